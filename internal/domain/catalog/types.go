package catalog

import (
	"strings"

	"lifepass-admin/internal/pkg/errs"
)

var (
	ErrInvalidChannelType   = errs.New("sales channel type must be web or kiosk")
	ErrInvalidValidityUnit  = errs.New("validity unit must be day, hour or season")
	ErrInvalidLanguage      = errs.New("language code must be two lowercase letters")
	ErrInvalidAgeRange      = errs.New("minimum age must not exceed maximum age")
	ErrNegativeAge          = errs.New("age cannot be negative")
	ErrNegativePrice        = errs.New("price cannot be negative")
	ErrMissingResort        = errs.New("resort is required")
	ErrMissingName          = errs.New("name is required")
	ErrMissingExternalID    = errs.New("authority product id is required")
	ErrInvalidValidityValue = errs.New("validity value must be positive")
)

type EntityType string

const (
	EntityProducts           EntityType = "products"
	EntityConsumerCategories EntityType = "consumer-categories"
	EntityValidityCategories EntityType = "validity-categories"
	EntitySalesChannels      EntityType = "sales-channels"
	EntityKiosks             EntityType = "kiosks"
)

func (e EntityType) String() string {
	return string(e)
}

type ChannelType string

const (
	ChannelWeb   ChannelType = "web"
	ChannelKiosk ChannelType = "kiosk"
)

func NewChannelType(s string) (ChannelType, error) {
	t := ChannelType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidChannelType
	}
	return t, nil
}

func (t ChannelType) IsValid() bool {
	switch t {
	case ChannelWeb, ChannelKiosk:
		return true
	default:
		return false
	}
}

func (t ChannelType) String() string {
	return string(t)
}

// LocalizedText maps a language code to text. Every language is optional.
type LocalizedText map[string]string

func NewLocalizedText(m map[string]string) (LocalizedText, error) {
	out := make(LocalizedText, len(m))
	for lang, text := range m {
		if len(lang) != 2 || strings.ToLower(lang) != lang {
			return nil, errs.Wrapf(ErrInvalidLanguage, "language %q", lang)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		out[lang] = text
	}
	return out, nil
}

// In returns the text for lang, falling back to fallback and then to any entry.
func (t LocalizedText) In(lang, fallback string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t[fallback]; ok {
		return s
	}
	for _, s := range t {
		return s
	}
	return ""
}
