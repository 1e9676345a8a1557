package cms

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
)

type projectDTO struct {
	Locales     []string        `json:"locales"`
	Collections []collectionDTO `json:"collections"`
}

type collectionDTO struct {
	Name       string        `json:"name"`
	Properties []propertyDTO `json:"properties"`
	Items      []itemDTO     `json:"items"`
}

type propertyDTO struct {
	Name string `json:"name"`
	I18n bool   `json:"i18n"`
}

type itemDTO struct {
	ID   any            `json:"_id"`
	Data map[string]any `json:"data"`
}

// DecodeProject parses a project response. Both the {"project": {...}}
// envelope and a bare project document are accepted. Numbers inside item
// data are kept as json.Number.
func DecodeProject(body []byte) (*entities.Project, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON: %w", domain.ErrShape)
	}
	doc := gjson.ParseBytes(body)
	if p := doc.Get("project"); p.Exists() {
		doc = p
	}
	if !doc.IsObject() {
		return nil, fmt.Errorf("project is %s, not an object: %w", doc.Type, domain.ErrShape)
	}
	for _, field := range []string{"locales", "collections"} {
		if !doc.Get(field).IsArray() {
			return nil, fmt.Errorf("project.%s is missing or not an array: %w", field, domain.ErrShape)
		}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(doc.Raw)))
	dec.UseNumber()
	var dto projectDTO
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrShape, err)
	}
	return dto.toDomain(), nil
}

func (p projectDTO) toDomain() *entities.Project {
	out := &entities.Project{
		Locales:     p.Locales,
		Collections: make([]entities.Collection, len(p.Collections)),
	}
	for i, c := range p.Collections {
		out.Collections[i] = c.toDomain()
	}
	return out
}

func (c collectionDTO) toDomain() entities.Collection {
	out := entities.Collection{
		Name:       c.Name,
		Properties: make([]entities.Property, len(c.Properties)),
		Items:      make([]entities.Item, len(c.Items)),
	}
	for i, p := range c.Properties {
		out.Properties[i] = entities.Property{
			Name:        p.Name,
			IsKeyField:  p.Name == entities.KeyField,
			IsLocalized: p.I18n,
		}
	}
	for i, item := range c.Items {
		out.Items[i] = entities.Item{
			ID:   itemID(item.ID),
			Data: item.Data,
		}
	}
	return out
}

func itemID(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
