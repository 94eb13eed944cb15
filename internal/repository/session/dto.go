package session

import (
	"time"

	"github.com/palsson-archive/leit/internal/domain"
	"github.com/palsson-archive/leit/internal/domain/search/filter"
	"github.com/palsson-archive/leit/internal/domain/search/result"
	domses "github.com/palsson-archive/leit/internal/domain/search/session"
)

type stateDTO struct {
	Query   string      `json:"query"`
	Page    string      `json:"page"`
	SavedAt time.Time   `json:"saved_at"`
	Filters filtersDTO  `json:"filters"`
	Results []resultDTO `json:"results"`
}

type filtersDTO struct {
	Type        string `json:"type"`
	YearMax     int    `json:"year_max"`
	Medium      string `json:"medium"`
	Institution string `json:"institution"`
}

type resultDTO struct {
	TitleEN   string `json:"title_en"`
	TitleIS   string `json:"title_is,omitempty"`
	Content   string `json:"content,omitempty"`
	SnippetEN string `json:"snippet_en,omitempty"`
	SnippetIS string `json:"snippet_is,omitempty"`
	Type      string `json:"type"`
	Year      int    `json:"year,omitempty"`
	URL       string `json:"url"`
	PageKey   string `json:"page_key,omitempty"`
	Score     int    `json:"score"`
	Position  int    `json:"position"`
}

func toDTO(st domses.State) stateDTO {
	f := st.Filters()
	dto := stateDTO{
		Query:   st.Query(),
		Page:    st.Page(),
		SavedAt: st.SavedAt(),
		Filters: filtersDTO{
			Type:        f.Type(),
			YearMax:     f.YearMax(),
			Medium:      f.Medium(),
			Institution: f.Institution(),
		},
	}
	for _, r := range st.Results() {
		doc := r.Document()
		title := doc.Title()
		snippet := doc.Snippet()
		dto.Results = append(dto.Results, resultDTO{
			TitleEN:   title.Localized("en"),
			TitleIS:   title.Localized("is"),
			Content:   doc.Content(),
			SnippetEN: snippet.Localized("en"),
			SnippetIS: snippet.Localized("is"),
			Type:      string(doc.Type()),
			Year:      doc.Year(),
			URL:       doc.URL(),
			PageKey:   doc.Page(),
			Score:     r.Score(),
			Position:  r.Position(),
		})
	}
	return dto
}

func fromDTO(dto stateDTO) domses.State {
	filters := filter.Reconstruct(
		dto.Filters.Type, dto.Filters.YearMax,
		dto.Filters.Medium, dto.Filters.Institution,
	)
	results := make([]result.Result, 0, len(dto.Results))
	for _, r := range dto.Results {
		doc := domain.Reconstruct(
			domain.NewBilingualText(r.TitleEN, r.TitleIS),
			r.Content,
			domain.NewBilingualText(r.SnippetEN, r.SnippetIS),
			domain.Type(r.Type), r.Year, r.URL, r.PageKey,
		)
		results = append(results, result.New(doc, r.Score, r.Position))
	}
	return domses.New(dto.Query, filters, results, dto.Page, dto.SavedAt)
}
