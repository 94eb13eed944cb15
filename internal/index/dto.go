package index

import (
	"encoding/json"
	"fmt"

	"github.com/palsson-archive/leit/internal/domain"
)

// bilingualDTO accepts either a plain string (legacy records) or an {en, is}
// object (bilingual records).
type bilingualDTO struct {
	en    string
	is    string
	plain bool
}

func (b *bilingualDTO) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.en = s
		b.plain = true
		return nil
	}

	var obj struct {
		EN string `json:"en"`
		IS string `json:"is"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("neither string nor {en,is} object: %w", err)
	}
	b.en = obj.EN
	b.is = obj.IS
	return nil
}

func (b bilingualDTO) toDomain() domain.BilingualText {
	if b.plain {
		return domain.NewPlainText(b.en)
	}
	return domain.NewBilingualText(b.en, b.is)
}

type documentDTO struct {
	Title   bilingualDTO `json:"title"`
	Content string       `json:"content"`
	Snippet bilingualDTO `json:"snippet"`
	Type    string       `json:"type"`
	Year    *int         `json:"year,omitempty"`
	URL     string       `json:"url"`
	Page    string       `json:"page,omitempty"`
}

func (d documentDTO) toDomain() (domain.Document, error) {
	year := 0
	if d.Year != nil {
		year = *d.Year
	}
	return domain.NewDocument(
		d.Title.toDomain(), d.Content, d.Snippet.toDomain(),
		domain.Type(d.Type), year, d.URL, d.Page,
	)
}
