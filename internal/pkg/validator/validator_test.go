package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Title     string `json:"title" validate:"required"`
	BasePrice int64  `json:"basePrice" validate:"gte=0"`
	Skipped   string `json:"-" validate:"required"`
}

func TestValidate_UsesWireNames(t *testing.T) {
	fields := Validate(sampleRequest{BasePrice: -5, Skipped: "x"})
	assert.Equal(t, "required", fields["title"])
	assert.Equal(t, "gte", fields["basePrice"])
	assert.NotContains(t, fields, "Title")
}

func TestValidate_NilWhenValid(t *testing.T) {
	assert.Nil(t, Validate(sampleRequest{Title: "Mountain Trek", BasePrice: 1200, Skipped: "x"}))
}
