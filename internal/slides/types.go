// Package slides defines the deck data model and the normalization of raw
// model output into it.
package slides

// SlideType is the closed set of layouts the generator may assign.
type SlideType string

const (
	TypeTitle      SlideType = "title"
	TypeBullets    SlideType = "bullets"
	TypeSplit      SlideType = "split"
	TypeQuote      SlideType = "quote"
	TypeImageFocus SlideType = "image-focus"
)

var validTypes = map[SlideType]bool{
	TypeTitle:      true,
	TypeBullets:    true,
	TypeSplit:      true,
	TypeQuote:      true,
	TypeImageFocus: true,
}

func (t SlideType) Valid() bool {
	return validTypes[t]
}

// SlideContent is the generator's structured output for one slide, before
// image enrichment.
type SlideContent struct {
	Title       string    `json:"title"`
	Content     []string  `json:"content"`
	ImagePrompt string    `json:"imagePrompt"`
	SlideType   SlideType `json:"slideType"`
}

// Slide is the final unit handed to the presentation layer. Image is empty
// when enrichment found nothing; that never blocks slide creation.
type Slide struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Bullets []string  `json:"bullets"`
	Type    SlideType `json:"type"`
	Image   string    `json:"image,omitempty"`
}

// Deck is an ordered, densely numbered slide sequence plus the topic it was
// generated from. It is replaced wholesale on every generation request.
type Deck struct {
	Topic  string  `json:"topic"`
	Slides []Slide `json:"slides"`
}
