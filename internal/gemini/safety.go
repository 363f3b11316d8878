package gemini

import "google.golang.org/genai"

// SafetyConfig is the immutable list of content-safety settings applied to
// every generation call. It is passed into the client explicitly so tests
// can substitute their own.
type SafetyConfig []*genai.SafetySetting

// DefaultSafetyConfig relaxes the harassment filter so invoices with terse
// or odd wording are not rejected by the provider.
func DefaultSafetyConfig() SafetyConfig {
	return SafetyConfig{
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		},
	}
}
