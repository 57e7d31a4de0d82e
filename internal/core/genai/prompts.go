package genai

import (
	"fmt"
	"strings"
)

// GreetingBrief carries everything the greeting prompt needs about the store
// and its confirmation agent.
type GreetingBrief struct {
	StoreName       string
	AgentName       string
	Language        string
	Tone            string
	ConfirmFields   []string
	IncludeDiscount bool
}

// BuildGreetingPrompt builds the order-confirmation greeting prompt.
func BuildGreetingPrompt(brief GreetingBrief) string {
	var sb strings.Builder

	sb.WriteString("Act as an e-commerce expert for the Moroccan market.\n")
	sb.WriteString("Write a short, effective order confirmation message to be sent via WhatsApp or SMS.\n\n")
	sb.WriteString("Details:\n")
	sb.WriteString(fmt.Sprintf("- Shop Name: %s\n", brief.StoreName))
	if brief.AgentName != "" {
		sb.WriteString(fmt.Sprintf("- Agent Name: %s\n", brief.AgentName))
	}
	sb.WriteString(fmt.Sprintf("- Language: %s\n", brief.Language))
	sb.WriteString(fmt.Sprintf("- Tone: %s\n", brief.Tone))
	sb.WriteString("- Context: A customer just placed an order (Cash on Delivery).\n")
	sb.WriteString("- Goal: Confirm the order and ask them to reply with \"1\" to confirm delivery.\n")
	if len(brief.ConfirmFields) > 0 {
		sb.WriteString(fmt.Sprintf("- Politely ask the customer to confirm: %s.\n", strings.Join(brief.ConfirmFields, ", ")))
	}
	if brief.IncludeDiscount {
		sb.WriteString("- Mention a 10% coupon for their next order.\n")
	}
	sb.WriteString("\nReturn ONLY the message text.")

	return sb.String()
}

// BuildReplySystemPrompt builds the system prompt for the interactive reply loop.
func BuildReplySystemPrompt(brief GreetingBrief) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are %s, the order-confirmation agent for the online store %s.\n",
		agentNameOrDefault(brief.AgentName), brief.StoreName))
	sb.WriteString(fmt.Sprintf("Reply in %s with a %s tone.\n", brief.Language, strings.ToLower(brief.Tone)))
	sb.WriteString("The customer placed a Cash on Delivery order and you are confirming it over chat.\n")
	if len(brief.ConfirmFields) > 0 {
		sb.WriteString(fmt.Sprintf("You still need to collect: %s.\n", strings.Join(brief.ConfirmFields, ", ")))
	}
	sb.WriteString("Keep replies short, stay on the order confirmation topic, never invent order details.")

	return sb.String()
}

func agentNameOrDefault(name string) string {
	if name == "" {
		return "the store assistant"
	}
	return name
}

// BuildDescriptionPrompt builds the product description prompt.
func BuildDescriptionPrompt(name, category, tone, language string) string {
	return fmt.Sprintf(
		"Write a compelling, sales-oriented product description for a %q in the %q category. "+
			"Tone: %s. Language: %s. Keep it under 100 words. Return ONLY the description text.",
		name, category, tone, language)
}

// BuildImagePrompt builds the product photography prompt.
func BuildImagePrompt(name, category string) string {
	return fmt.Sprintf(
		"Professional product photography of %s, %s, studio lighting, 4k resolution, "+
			"minimalist background, commercial ecommerce style.",
		name, category)
}

// BuildAdCopyPrompt builds a platform-specific ad copy prompt.
func BuildAdCopyPrompt(productName, platform, language string) string {
	return fmt.Sprintf(
		"Write a high-converting %s ad caption for the product %q targeting Moroccan shoppers. "+
			"Language: %s. Include a strong hook, a call to action and 3 relevant hashtags. "+
			"Return ONLY the caption text.",
		platform, productName, language)
}

// BuildSEOPrompt builds the SEO metadata extraction prompt.
func BuildSEOPrompt(productName, description string) string {
	return fmt.Sprintf(
		"Generate SEO metadata for an e-commerce product page.\n"+
			"Product: %s\nDescription: %s\n"+
			"Return a JSON object with keys: \"metaTitle\" (max 60 chars), "+
			"\"metaDescription\" (max 155 chars), \"keywords\" (comma-separated string). Return ONLY JSON.",
		productName, description)
}

// BuildImportPrompt builds the smart-import extraction prompt.
func BuildImportPrompt(rawText string) string {
	return fmt.Sprintf(
		"Analyze this product input: %q. Return a JSON object with keys: "+
			"\"suggestedName\", \"category\", \"estimatedPriceMAD\" (number). Return ONLY JSON.",
		rawText)
}
