package genai

import (
	"fmt"
	"strings"

	"github.com/lumira-inc/lumira/internal/application/studio/generation"
	vo "github.com/lumira-inc/lumira/internal/domain/studio/valueobjects"
)

func categoryPrompt() string {
	var b strings.Builder
	b.WriteString("Classify the product in this photo into exactly one of the following categories. ")
	b.WriteString("Answer with the category name only, nothing else.\n")
	for _, c := range vo.AllProductCategories() {
		b.WriteString("- ")
		b.WriteString(c.String())
		b.WriteString("\n")
	}
	return b.String()
}

// styleDirective sets the art direction per edit style.
func styleDirective(style vo.EditStyle) string {
	switch style {
	case vo.StyleEcommerce:
		return "Clean e-commerce product photography: neutral seamless background, soft even lighting, the product fills the frame."
	case vo.StyleCatalog:
		return "Editorial catalog photography: styled set design, coordinated props and surfaces, a consistent lookbook feel across shots."
	case vo.StyleSocialMedia:
		return "Social-media-ready lifestyle photography: candid real-world settings, natural light, square-friendly composition."
	case vo.StyleAdvertising:
		return "High-impact advertising photography: dramatic lighting, bold color grading, cinematic hero compositions."
	}
	return "Professional product photography."
}

func conceptPrompt(req generation.ConceptRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an art director planning a product photo shoot for a %s product.\n", req.Category)
	b.WriteString(styleDirective(req.Style))
	b.WriteString("\n")
	if req.IncludeModel {
		b.WriteString("Shots should feature a human model interacting naturally with the product.\n")
	} else {
		b.WriteString("Shots must show the product only, no people.\n")
	}
	if req.CustomPrompt != "" {
		fmt.Fprintf(&b, "The client asks for: %s\n", req.CustomPrompt)
	}
	fmt.Fprintf(&b,
		"Propose a single cohesive theme and exactly %d distinct shot descriptions for the product in the attached photo. ",
		req.ShotCount)
	b.WriteString(`Respond with JSON only, shaped as {"theme": "...", "shots": ["...", ...]}.`)
	return b.String()
}

func shotPrompt(req generation.ShotRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Edit the attached %s product photo into a new image.\n", req.Category)
	b.WriteString(styleDirective(req.Style))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Shoot theme: %s\n", req.Theme)
	fmt.Fprintf(&b, "This shot: %s\n", req.Description)
	if req.IncludeModel {
		b.WriteString("Include a human model interacting naturally with the product.\n")
	} else {
		b.WriteString("Show the product only, no people.\n")
	}
	b.WriteString("Keep the product itself pixel-faithful to the original photo. Return the image only.")
	return b.String()
}
