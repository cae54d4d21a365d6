package llm

// Pricing is USD per 1K tokens.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

const DefaultModel = "gpt-4"

var pricingTable = map[string]Pricing{
	"gpt-4":               {InputPer1K: 0.03, OutputPer1K: 0.06},
	"gpt-4-turbo":         {InputPer1K: 0.01, OutputPer1K: 0.03},
	"gpt-4-turbo-preview": {InputPer1K: 0.01, OutputPer1K: 0.03},
	"gpt-4-1106-preview":  {InputPer1K: 0.01, OutputPer1K: 0.03},
}

// PricingFor falls back to gpt-4 rates for unlisted models.
func PricingFor(model string) Pricing {
	if p, ok := pricingTable[model]; ok {
		return p
	}
	return pricingTable[DefaultModel]
}

// EstimateCost prices an aggregate token count at the mean of the input and
// output rates, since completions report only a combined total reliably.
func EstimateCost(model string, tokens int) float64 {
	p := PricingFor(model)
	perToken := (p.InputPer1K + p.OutputPer1K) / 2 / 1000
	return float64(tokens) * perToken
}

// ResolveModel maps a catalog model id to the hosted model name.
// Anything the hosted provider cannot serve resolves to gpt-4.
func ResolveModel(requested string) string {
	switch requested {
	case "gpt-4":
		return "gpt-4"
	case "gpt-4-turbo":
		return "gpt-4-turbo-preview"
	default:
		return DefaultModel
	}
}
