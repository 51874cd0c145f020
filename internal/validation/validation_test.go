package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"doris-art/internal/domain/workshops"
)

const validWorkshop = `{
  "title": "Akvarel za otroke",
  "audience": "children",
  "active": true,
  "technique": "akvarel",
  "description": "Uvod v akvarel",
  "duration": "2 uri",
  "price": 25,
  "includes": ["material"],
  "maxParticipants": 8,
  "image": "/images/workshops/akvarel.jpg",
  "schedules": [{"id": 1, "date": "2026-06-07", "time": "10:00", "spotsTotal": 8, "spotsTaken": 0}]
}`

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation Errors; got %v", err)
	}
	return errs
}

func hasPath(errs Errors, path string) bool {
	for _, fe := range errs {
		if fe.Path == path {
			return true
		}
	}
	return false
}

func TestWorkshopCreate_Valid(t *testing.T) {
	var in WorkshopCreate
	if err := Decode([]byte(validWorkshop), &in); err != nil {
		t.Fatalf("expected valid payload; got %v", err)
	}
	w := in.Workshop(3)
	if w.ID != 3 || w.Currency != "EUR" || w.IncludesEn == nil || len(w.Schedules) != 1 {
		t.Fatalf("unexpected workshop %+v", w)
	}
	if w.Schedules[0].SpotsTotal != 8 {
		t.Fatalf("schedule not carried over: %+v", w.Schedules[0])
	}
}

func TestWorkshopCreate_ZeroSpotsTotal(t *testing.T) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(validWorkshop), &raw); err != nil {
		t.Fatal(err)
	}
	raw["schedules"] = []any{
		map[string]any{"id": 1, "date": "2026-06-07", "time": "10:00", "spotsTotal": 8, "spotsTaken": 0},
		map[string]any{"id": 2, "date": "2026-06-14", "time": "10:00", "spotsTotal": 0, "spotsTaken": 0},
	}
	body, _ := json.Marshal(raw)

	var in WorkshopCreate
	errs := fieldErrors(t, Decode(body, &in))
	if !hasPath(errs, "schedules[1].spotsTotal") {
		t.Fatalf("expected error at schedules[1].spotsTotal; got %+v", errs)
	}
}

func TestWorkshopCreate_MissingAndMalformed(t *testing.T) {
	body := `{"audience":"seniors","price":-1,"maxParticipants":0,
	  "schedules":[{"id":1,"date":"7.6.2026","time":"10h","spotsTotal":3,"spotsTaken":1}]}`
	var in WorkshopCreate
	errs := fieldErrors(t, Decode([]byte(body), &in))
	for _, p := range []string{
		"title", "audience", "active", "technique", "description", "duration",
		"price", "includes", "maxParticipants", "image",
		"schedules[0].date", "schedules[0].time",
	} {
		if !hasPath(errs, p) {
			t.Errorf("expected error at %s; got %+v", p, errs)
		}
	}
}

func TestWorkshopCreate_SpotsTakenAboveTotal(t *testing.T) {
	var raw map[string]any
	_ = json.Unmarshal([]byte(validWorkshop), &raw)
	raw["schedules"] = []any{map[string]any{"id": 1, "date": "2026-06-07", "time": "10:00", "spotsTotal": 2, "spotsTaken": 3}}
	body, _ := json.Marshal(raw)
	var in WorkshopCreate
	errs := fieldErrors(t, Decode(body, &in))
	if !hasPath(errs, "schedules[0].spotsTaken") {
		t.Fatalf("expected spotsTaken error; got %+v", errs)
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	var in WorkshopCreate
	errs := fieldErrors(t, Decode([]byte(`{"price":"free"}`), &in))
	if len(errs) != 1 || errs[0].Path != "price" || errs[0].Message != "expected number" {
		t.Fatalf("unexpected %+v", errs)
	}
	errs = fieldErrors(t, Decode([]byte(`{not json`), &in))
	if errs[0].Message != "invalid JSON body" {
		t.Fatalf("unexpected %+v", errs)
	}
}

func TestWorkshopUpdate_PartialMerge(t *testing.T) {
	active := true
	w := workshops.Workshop{ID: 5, Title: "Old", Price: 20, Active: &active, Includes: []string{"a"}}
	var in WorkshopUpdate
	if err := Decode([]byte(`{"title":"New","active":false}`), &in); err != nil {
		t.Fatal(err)
	}
	in.ApplyTo(&w)
	if w.ID != 5 || w.Title != "New" || w.Price != 20 || w.Enabled() || len(w.Includes) != 1 {
		t.Fatalf("unexpected merge %+v", w)
	}
}

func TestWorkshopUpdate_RejectsEmptyTitle(t *testing.T) {
	var in WorkshopUpdate
	errs := fieldErrors(t, Decode([]byte(`{"title":""}`), &in))
	if !hasPath(errs, "title") {
		t.Fatalf("expected title error; got %+v", errs)
	}
}

func TestRentalCreate(t *testing.T) {
	var in RentalCreate
	body := `{"title":"Lestenec","description":"Kovinski","image":"/x.jpg","pricePerDay":0,"deposit":30,"category":"Razsvetljava","active":true}`
	if err := Decode([]byte(body), &in); err != nil {
		t.Fatalf("zero price per day is allowed: %v", err)
	}
	if r := in.Rental(1); r.Currency != "EUR" || r.Deposit != 30 {
		t.Fatalf("unexpected rental %+v", r)
	}
	var bad RentalCreate
	errs := fieldErrors(t, Decode([]byte(`{"title":"x","pricePerDay":-5}`), &bad))
	for _, p := range []string{"description", "image", "pricePerDay", "deposit", "category", "active"} {
		if !hasPath(errs, p) {
			t.Errorf("expected error at %s", p)
		}
	}
}

func TestPaintingCreate_ImagePaths(t *testing.T) {
	var in PaintingCreate
	errs := fieldErrors(t, Decode([]byte(`{"title":"Morje","images":[{"id":1,"src":""}]}`), &in))
	if !hasPath(errs, "images[0].src") {
		t.Fatalf("expected images[0].src; got %+v", errs)
	}
}

func TestDecodeList(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{"id":2,"src":"/b.jpg","alt":"b"}`),
		json.RawMessage(`{"id":1,"src":"/a.jpg"}`),
	}
	items, err := DecodeList[GalleryImageCreate](raw, "images")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].ID != 2 || items[1].Value.Src != "/a.jpg" {
		t.Fatalf("unexpected %+v", items)
	}

	bad := []json.RawMessage{
		json.RawMessage(`{"src":"/a.jpg"}`),
		json.RawMessage(`{"id":4,"src":""}`),
		json.RawMessage(`{"id":4,"src":"/c.jpg"}`),
	}
	_, err = DecodeList[GalleryImageCreate](bad, "images")
	errs := fieldErrors(t, err)
	for _, p := range []string{"images[0].id", "images[1].src"} {
		if !hasPath(errs, p) {
			t.Errorf("expected %s; got %+v", p, errs)
		}
	}
}

func TestForms(t *testing.T) {
	var w WorkshopInquiryInput
	errs := fieldErrors(t, Decode([]byte(`{"mode":"scheduled","name":"A","email":"a@b.si","phone":"1"}`), &w))
	if !hasPath(errs, "workshopId") {
		t.Fatalf("scheduled mode needs a workshop; got %+v", errs)
	}
	var c WorkshopInquiryInput
	errs = fieldErrors(t, Decode([]byte(`{"mode":"custom","name":"A","email":"nope","phone":"1"}`), &c))
	if !hasPath(errs, "eventType") || !hasPath(errs, "email") {
		t.Fatalf("unexpected %+v", errs)
	}

	var r RentalReservationInput
	errs = fieldErrors(t, Decode([]byte(`{"rentalId":1,"name":"A","email":"a@b.si","phone":"1","pickupDate":"2026-06-01","returnDate":"x","pickupTime":"9"}`), &r))
	if !hasPath(errs, "returnDate") || !hasPath(errs, "pickupTime") {
		t.Fatalf("unexpected %+v", errs)
	}
}
