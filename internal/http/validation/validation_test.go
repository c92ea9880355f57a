package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type query struct {
	Selected int `form:"selected,omitempty" validate:"min=0"`
}

type inner struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
}

type outer struct {
	Level   string `mapstructure:"log_level" validate:"oneof=debug info"`
	Listing inner  `mapstructure:"listing"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()
	q := query{Selected: -1}

	fe := FromBindError(v.Struct(q), &q)

	assert.Equal(t, FieldErrors{"selected": "Must be at least 0."}, fe)
}

func TestFromBindErrorOther(t *testing.T) {
	fe := FromBindError(errors.New("strconv.ParseInt: invalid syntax"), &query{})

	assert.Equal(t, FieldErrors{"_": "Request parameters are invalid."}, fe)
}

func TestFromStructError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(TagNameFunc("mapstructure"))

	fe := FromStructError(v.Struct(outer{Level: "loud", Listing: inner{Endpoint: "not a url"}}))

	assert.Equal(t, FieldErrors{
		"log_level":        "Must be one of: debug info.",
		"listing.endpoint": "Must be an absolute URL.",
	}, fe)
	assert.Equal(t, "listing.endpoint: Must be an absolute URL.; log_level: Must be one of: debug info.", fe.String())
}
