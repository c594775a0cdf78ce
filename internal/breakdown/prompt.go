package breakdown

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a product planning assistant. Respond only with JSON matching the provided schema."

// Prompt renders the user prompt for req.
func Prompt(req Request) string {
	switch req.Kind {
	case KindFeature:
		return featurePrompt(req)
	default:
		return applicationPrompt(req)
	}
}

func applicationPrompt(req Request) string {
	return fmt.Sprintf(
		"Generate a breakdown of all possible features for the application named: %s. "+
			"Here's a brief description of the app: %s. "+
			"Here's a list of product specs: %s and here's a breakdown of the features the user already knows that they want: %s. "+
			"Given all of the provided context, generate a list of features that would be most relevant to the user's needs. "+
			"Database integrations should not be a feature but rather baked into the underlying functionality / use-case based features.",
		req.EntityName, req.ShortDescription, req.Specs, req.KnownBreakdown,
	)
}

func featurePrompt(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed breakdown of features for an application named: %s.\n", req.EntityName)
	fmt.Fprintf(&b, "Type of features needed: %s\n", req.Type)
	fmt.Fprintf(&b, "High-level specifications: %s\n", req.Specs)
	fmt.Fprintf(&b, "Specific feature requirements: %s\n\n", req.KnownBreakdown)
	b.WriteString("Generate a comprehensive list of features that align with these requirements. Each feature should include:\n")
	b.WriteString("- A clear, concise name\n")
	b.WriteString("- A detailed description\n")
	b.WriteString("- Technical specifications for implementation\n\n")
	b.WriteString("Focus on practical, implementable features that directly solve the specified needs.")
	return b.String()
}
