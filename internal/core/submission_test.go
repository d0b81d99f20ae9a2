package core

import (
	"testing"
)

func TestJoinProducts(t *testing.T) {
	testCases := []struct {
		name   string
		values []string
		want   string
	}{
		{"none selected", nil, ""},
		{"single", []string{"Soap"}, "Soap"},
		{"multiple keep document order", []string{"Soap", "Oil"}, "Soap, Oil"},
		{"pre-joined single entry passes through", []string{"Soap, Oil"}, "Soap, Oil"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := JoinProducts(testCase.values); got != testCase.want {
				t.Errorf("JoinProducts(%v) = %q; want %q", testCase.values, got, testCase.want)
			}
		})
	}
}

func TestSubmissionFields_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		fields  SubmissionFields
		wantErr bool
	}{
		{
			name:    "location not recorded needs no coordinates",
			fields:  SubmissionFields{LocationRecorded: LocationRecordedNo},
			wantErr: false,
		},
		{
			name: "recorded with full capture",
			fields: SubmissionFields{
				LocationRecorded: LocationRecordedYes,
				Latitude:         "23.8103",
				Longitude:        "90.4125",
				LocationLink:     "https://maps.google.com/?q=23.8103,90.4125",
			},
			wantErr: false,
		},
		{
			name: "recorded without latitude",
			fields: SubmissionFields{
				LocationRecorded: LocationRecordedYes,
				Longitude:        "90.4125",
				LocationLink:     "https://maps.google.com/?q=,90.4125",
			},
			wantErr: true,
		},
		{
			name: "recorded without link",
			fields: SubmissionFields{
				LocationRecorded: LocationRecordedYes,
				Latitude:         "23.8103",
				Longitude:        "90.4125",
			},
			wantErr: true,
		},
		{
			name:    "empty flag is treated as not recorded",
			fields:  SubmissionFields{},
			wantErr: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.fields.Validate()
			if (err != nil) != testCase.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, testCase.wantErr)
			}
		})
	}
}

func TestSubmissionRecord_Row_FixedColumnOrder(t *testing.T) {
	fields := &SubmissionFields{
		SRName:           "Alice",
		StoreName:        "Corner Store",
		VisitType:        "New Visit",
		Category:         "Grocery",
		Phone:            "0123456789",
		LeadType:         "Hot",
		FollowUpDate:     "2024-06-01",
		Products:         []string{"Soap", "Oil"},
		OrderDetails:     "10 cartons",
		LocationRecorded: LocationRecordedYes,
		Latitude:         "23.8103",
		Longitude:        "90.4125",
		LocationLink:     "https://maps.google.com/?q=23.8103,90.4125",
		Remarks:          "repeat customer",
	}

	record := NewSubmissionRecord(fields, "5/17/2024, 10:30:00 AM", "http://localhost:3000/uploads/x.jpg")
	row := record.Row()

	want := []any{
		"5/17/2024, 10:30:00 AM",
		"Alice",
		"Corner Store",
		"New Visit",
		"Grocery",
		"0123456789",
		"Hot",
		"2024-06-01",
		"http://localhost:3000/uploads/x.jpg",
		"Soap, Oil",
		"10 cartons",
		"yes",
		"23.8103",
		"90.4125",
		"https://maps.google.com/?q=23.8103,90.4125",
		"repeat customer",
	}

	if len(row) != len(RowHeader) {
		t.Fatalf("row has %d columns; want %d", len(row), len(RowHeader))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("row[%d] (%s) = %v; want %v", i, RowHeader[i], row[i], want[i])
		}
	}
}
