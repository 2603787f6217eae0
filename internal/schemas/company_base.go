package schemas

// CompanyBaseSchema is the JSON Schema the extraction model's response must
// conform to. It mirrors the shape of company.CompanyBase: every graded fact
// carries pages and a quality enum, optional financial metrics are nullable
// numbers so "not disclosed" stays distinct from zero, and both enums are
// closed sets.
const CompanyBaseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "CompanyBase",
  "type": "object",
  "definitions": {
    "pages": {
      "type": "array",
      "items": { "type": "integer", "minimum": 0 }
    },
    "quality": {
      "type": "string",
      "enum": ["high", "medium", "low"]
    },
    "scalar_fact": {
      "type": "object",
      "properties": {
        "pages": { "$ref": "#/definitions/pages" },
        "quality": { "$ref": "#/definitions/quality" },
        "value": { "type": "string" }
      },
      "required": ["pages", "quality", "value"]
    },
    "employee": {
      "type": "object",
      "properties": {
        "name": { "type": "string" },
        "role": { "type": "string" },
        "description": { "type": "string" }
      },
      "required": ["name", "role", "description"]
    },
    "metric_point": {
      "type": "object",
      "properties": {
        "year": { "type": "integer" },
        "revenue": { "type": ["number", "null"] },
        "ebitda": { "type": ["number", "null"] },
        "margin": { "type": ["number", "null"] },
        "debt": { "type": ["number", "null"] },
        "type": { "type": "string", "enum": ["actual", "forecast"] }
      },
      "required": ["year", "type"]
    }
  },
  "properties": {
    "name": { "$ref": "#/definitions/scalar_fact" },
    "description": { "$ref": "#/definitions/scalar_fact" },
    "strategy": { "$ref": "#/definitions/scalar_fact" },
    "business_model": { "$ref": "#/definitions/scalar_fact" },
    "market": { "$ref": "#/definitions/scalar_fact" },
    "clients": { "$ref": "#/definitions/scalar_fact" },
    "products": { "$ref": "#/definitions/scalar_fact" },
    "top_management": {
      "type": "object",
      "properties": {
        "employees": {
          "type": "array",
          "items": { "$ref": "#/definitions/employee" }
        },
        "pages": { "$ref": "#/definitions/pages" }
      },
      "required": ["employees", "pages"]
    },
    "financials": {
      "type": "object",
      "properties": {
        "pages": { "$ref": "#/definitions/pages" },
        "quality": { "$ref": "#/definitions/quality" },
        "currency": { "type": "string", "minLength": 1 },
        "data": {
          "type": "array",
          "items": { "$ref": "#/definitions/metric_point" }
        }
      },
      "required": ["pages", "quality", "currency", "data"]
    }
  },
  "required": [
    "name",
    "description",
    "strategy",
    "business_model",
    "market",
    "clients",
    "products",
    "top_management",
    "financials"
  ]
}`
