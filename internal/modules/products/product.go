package products

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// PriceUnit is the currency every listing price is denominated in.
const PriceUnit = "ETH"

// Product is one listing record as served by the marketplace backend.
//
// The backend is not schema-checked: every field is kept as the text it
// arrived as, whether the JSON value was a string, a number or a boolean.
// Null, missing and composite values decode to "".
type Product struct {
	Image       string
	Description string
	OwnerName   string
	// Price is the amount without its unit. Numbers are printed in
	// plain decimal form ("1.50" becomes "1.5"); strings are kept verbatim.
	Price string

	raw     json.RawMessage
	decoded fields
}

type fields struct {
	Image, Description, OwnerName, Price string
}

func (p Product) fields() fields {
	return fields{p.Image, p.Description, p.OwnerName, p.Price}
}

// Raw returns the record exactly as received, including fields the card
// does not display. It is nil for records built in code, and for decoded
// records whose fields have been changed since.
func (p Product) Raw() json.RawMessage {
	if len(p.raw) == 0 || p.fields() != p.decoded {
		return nil
	}
	return p.raw
}

// wire is the on-the-wire shape of a record.
type wire struct {
	Image       text `json:"img"`
	Description text `json:"des"`
	OwnerName   text `json:"uname"`
	Price       text `json:"price"`
}

func (p *Product) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*p = Product{
		Image:       string(w.Image),
		Description: string(w.Description),
		OwnerName:   string(w.OwnerName),
		Price:       string(w.Price),
		raw:         append(json.RawMessage(nil), b...),
	}
	p.decoded = p.fields()
	return nil
}

// MarshalJSON emits the original record while it is unchanged so that
// fields unknown to this app survive a round trip.
func (p Product) MarshalJSON() ([]byte, error) {
	if raw := p.Raw(); raw != nil {
		return raw, nil
	}
	out := struct {
		Image       string `json:"img"`
		Description string `json:"des"`
		OwnerName   string `json:"uname"`
		Price       any    `json:"price"`
	}{p.Image, p.Description, p.OwnerName, p.Price}
	if isNumber(p.Price) {
		out.Price = json.Number(p.Price)
	}
	return json.Marshal(out)
}

// text accepts any scalar JSON value and keeps its printed form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*t = text(v)
	case json.Number:
		*t = text(formatNumber(v))
	case bool:
		*t = text(strconv.FormatBool(v))
	default:
		*t = ""
	}
	return nil
}

func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isNumber(s string) bool {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return false
	}
	return json.Valid([]byte(s))
}
