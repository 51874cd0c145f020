package inquiries

type Locale string

const (
	LocaleSl Locale = "sl"
	LocaleEn Locale = "en"
)

type labels struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	SelectedWorkshop string
	Date             string
	At               string
	EventType        string
	NumberOfPeople   string
	PreferredDate    string

	SubjectBooking string
	SubjectCustom  string
	SubjectContact string
}

var labelSets = map[Locale]labels{
	LocaleSl: {
		Name: "Ime", Email: "E-pošta", Phone: "Telefon", Subject: "Zadeva", Message: "Sporočilo",
		SelectedWorkshop: "Izbrana delavnica", Date: "Datum", At: "ob",
		EventType: "Vrsta dogodka", NumberOfPeople: "Število oseb", PreferredDate: "Želeni datum",
		SubjectBooking: "Prijava na delavnico", SubjectCustom: "Povpraševanje za delavnico",
		SubjectContact: "Sporočilo s spletne strani",
	},
	LocaleEn: {
		Name: "Name", Email: "Email", Phone: "Phone", Subject: "Subject", Message: "Message",
		SelectedWorkshop: "Selected workshop", Date: "Date", At: "at",
		EventType: "Event type", NumberOfPeople: "Number of people", PreferredDate: "Preferred date",
		SubjectBooking: "Workshop booking", SubjectCustom: "Custom workshop inquiry",
		SubjectContact: "Message from the website",
	},
}

func labelsFor(l Locale) labels {
	if ls, ok := labelSets[l]; ok {
		return ls
	}
	return labelSets[LocaleSl]
}

func ParseLocale(s string) Locale {
	if Locale(s) == LocaleEn {
		return LocaleEn
	}
	return LocaleSl
}

var slMonths = [...]string{
	"januar", "februar", "marec", "april", "maj", "junij",
	"julij", "avgust", "september", "oktober", "november", "december",
}
