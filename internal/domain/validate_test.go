package domain

import (
	"context"
	"testing"
)

type samplePayload struct {
	Name      string `json:"name" validate:"required,max=5"`
	HomeID    ID     `json:"homeId" validate:"required"`
	AwayID    ID     `json:"awayId" validate:"required,nefield=HomeID"`
	PlayerIDs []ID   `json:"playerIds" validate:"required,min=1,dive,required"`
}

func TestValidateStructAcceptsValidPayload(t *testing.T) {
	p := samplePayload{Name: "Cup", HomeID: "1", AwayID: "2", PlayerIDs: []ID{"1"}}
	if err := ValidateStruct(context.Background(), p); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateStructNamesJSONField(t *testing.T) {
	cases := []struct {
		payload samplePayload
		field   string
	}{
		{samplePayload{HomeID: "1", AwayID: "2", PlayerIDs: []ID{"1"}}, "name"},
		{samplePayload{Name: "toolong", HomeID: "1", AwayID: "2", PlayerIDs: []ID{"1"}}, "name"},
		{samplePayload{Name: "Cup", HomeID: "1", AwayID: "1", PlayerIDs: []ID{"1"}}, "awayId"},
		{samplePayload{Name: "Cup", HomeID: "1", AwayID: "2", PlayerIDs: []ID{}}, "playerIds"},
		{samplePayload{Name: "Cup", HomeID: "1", AwayID: "2", PlayerIDs: []ID{""}}, "playerIds[0]"},
	}
	for _, tc := range cases {
		err := ValidateStruct(context.Background(), tc.payload)
		vErr, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("expected validation error for %+v, got %v", tc.payload, err)
		}
		if vErr.Field != tc.field {
			t.Fatalf("expected field %s, got %s (%s)", tc.field, vErr.Field, vErr.Message)
		}
	}
}
