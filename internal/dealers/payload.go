package dealers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dealership/internal/models"
)

type payloadKind int

const (
	kindNone payloadKind = iota
	kindList
	kindObject
	kindScalar
)

// kindOf определяет форму JSON по первому значимому символу.
// Пустое тело и null — kindNone.
func kindOf(raw json.RawMessage) payloadKind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return kindNone
	}
	switch trimmed[0] {
	case '[':
		return kindList
	case '{':
		return kindObject
	case 'n':
		return kindNone
	default:
		return kindScalar
	}
}

// decodeDealers принимает список дилеров или объект с ключом "dealerships".
// false — форма незнакомая, ответ отдаётся клиенту как есть.
func decodeDealers(raw json.RawMessage) ([]models.Dealer, bool) {
	switch kindOf(raw) {
	case kindList:
		var dealers []models.Dealer
		if err := json.Unmarshal(raw, &dealers); err != nil {
			return nil, false
		}
		return dealers, true
	case kindObject:
		var wrapped struct {
			Dealerships json.RawMessage `json:"dealerships"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil || kindOf(wrapped.Dealerships) != kindList {
			return nil, false
		}
		return decodeDealers(wrapped.Dealerships)
	default:
		return nil, false
	}
}

// decodeReviews принимает только JSON-массив: объект, даже с вложенным
// списком, считается отсутствием отзывов. Элементы, которые не читаются
// как отзыв, пропускаются и попадают в skipped.
func decodeReviews(raw json.RawMessage) (reviews []models.DealerReview, skipped []error, ok bool) {
	if kindOf(raw) != kindList {
		return nil, nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil, false
	}

	reviews = make([]models.DealerReview, 0, len(items))
	for i, it := range items {
		if kindOf(it) != kindObject {
			skipped = append(skipped, fmt.Errorf("review #%d: not an object", i))
			continue
		}
		var r models.DealerReview
		if err := json.Unmarshal(it, &r); err != nil {
			skipped = append(skipped, fmt.Errorf("review #%d: %w", i, err))
			continue
		}
		reviews = append(reviews, r.WithDefaults())
	}
	return reviews, skipped, true
}
