package bolt

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/pixora/storefront/internal/domain/catalog"
)

// encodeProducts serializes the product list as a JSON array. Prices are
// written as raw numbers from their decimal representation, so the
// round-trip is exact.
func encodeProducts(products []catalog.Product) []byte {
	e := &jx.Encoder{}
	e.ArrStart()
	for _, p := range products {
		encodeProduct(e, p)
	}
	e.ArrEnd()
	return e.Bytes()
}

func encodeProduct(e *jx.Encoder, p catalog.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("category")
	e.Str(p.Category)
	e.FieldStart("price")
	e.Num(jx.Num(p.Price.String()))
	e.FieldStart("image")
	e.Str(p.Image)
	e.FieldStart("description")
	e.Str(p.Description)
	e.FieldStart("highlights")
	e.ArrStart()
	for _, h := range p.Highlights {
		e.Str(h)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func decodeProducts(data []byte) ([]catalog.Product, error) {
	d := jx.DecodeBytes(data)
	var products []catalog.Product
	if err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodeProduct(d)
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	}); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeProduct(d *jx.Decoder) (catalog.Product, error) {
	var p catalog.Product
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "id":
			p.ID, err = d.Str()
		case "name":
			p.Name, err = d.Str()
		case "category":
			p.Category, err = d.Str()
		case "price":
			var n jx.Num
			if n, err = d.Num(); err != nil {
				return err
			}
			p.Price, err = decimal.NewFromString(string(n))
			err = errors.Wrap(err, "parse price")
		case "image":
			p.Image, err = d.Str()
		case "description":
			p.Description, err = d.Str()
		case "highlights":
			err = d.Arr(func(d *jx.Decoder) error {
				h, err := d.Str()
				if err != nil {
					return err
				}
				p.Highlights = append(p.Highlights, h)
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
	return p, err
}
