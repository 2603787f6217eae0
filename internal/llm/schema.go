package llm

import "github.com/google/generative-ai-go/genai"

// CompanyBaseSchema returns the response schema handed to Gemini so the
// model is constrained to the company record shape at generation time. The
// structure must stay in lockstep with schemas.CompanyBaseSchema, which is
// what the response is validated against afterwards.
func CompanyBaseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":           scalarFactSchema("Name of the company."),
			"description":    scalarFactSchema("Description of the company."),
			"strategy":       scalarFactSchema("The strategy of the company."),
			"business_model": scalarFactSchema("The business model of the company, or how does the company earn money."),
			"market":         scalarFactSchema("The market in which the company is active, including a description."),
			"clients":        scalarFactSchema("The clients of the company, including a description."),
			"products":       scalarFactSchema("The products or services the company sells, including a description."),
			"top_management": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"employees": {
						Type:        genai.TypeArray,
						Description: "The top management / the executive team / the most important employees of the company.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"name":        {Type: genai.TypeString, Description: "The name of the employee."},
								"role":        {Type: genai.TypeString, Description: "The role of the employee."},
								"description": {Type: genai.TypeString, Description: "The description of the employee (past experience, education, ...)."},
							},
							Required: []string{"name", "role", "description"},
						},
					},
					"pages": pagesSchema(),
				},
				Required: []string{"employees", "pages"},
			},
			"financials": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"pages":   pagesSchema(),
					"quality": qualitySchema(),
					"currency": {
						Type:        genai.TypeString,
						Description: "The currency of the financial values. It must be a currency in ISO format (EUR, USD, ...) and can also include m (million) or k (thousands).",
					},
					"data": {
						Type:        genai.TypeArray,
						Description: "Time series of actual and forecast financial data by year.",
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"year":    {Type: genai.TypeInteger, Description: "The year of the financial data."},
								"revenue": {Type: genai.TypeNumber, Nullable: true, Description: "Revenue for the year."},
								"ebitda":  {Type: genai.TypeNumber, Nullable: true, Description: "EBITDA for the year."},
								"margin":  {Type: genai.TypeNumber, Nullable: true, Description: "Margin for the year."},
								"debt":    {Type: genai.TypeNumber, Nullable: true, Description: "Debt at the year-end."},
								"type": {
									Type:        genai.TypeString,
									Enum:        []string{"actual", "forecast"},
									Description: "Indicates whether this is actual historical data or forecast data.",
								},
							},
							Required: []string{"year", "type"},
						},
					},
				},
				Required: []string{"pages", "quality", "currency", "data"},
			},
		},
		Required: []string{
			"name", "description", "strategy", "business_model",
			"market", "clients", "products", "top_management", "financials",
		},
	}
}

func scalarFactSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"pages":   pagesSchema(),
			"quality": qualitySchema(),
			"value":   {Type: genai.TypeString, Description: description},
		},
		Required: []string{"pages", "quality", "value"},
	}
}

func pagesSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: "The pages at which the information was found. Number the pages according to the pdf document (starting at 0), not as shown in the document itself.",
		Items:       &genai.Schema{Type: genai.TypeInteger},
	}
}

func qualitySchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Enum:        []string{"high", "medium", "low"},
		Description: "The quality of the extracted data: high, medium or low extraction accuracy.",
	}
}
