package openai

import (
	"fmt"
	"strings"
)

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "concepts": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "definition": {"type": "string"},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["name", "confidence"],
        "additionalProperties": false
      }
    },
    "entities": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "attributes": {"type": "object", "additionalProperties": {"type": "string"}},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["name", "type", "confidence"],
        "additionalProperties": false
      }
    },
    "relationships": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "source": {"type": "string"},
          "target": {"type": "string"},
          "type": {"type": "string"},
          "description": {"type": "string"},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        },
        "required": ["source", "target", "type", "confidence"],
        "additionalProperties": false
      }
    }
  },
  "required": ["concepts", "entities", "relationships"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `You are an expert knowledge engineer. Extract concepts, named entities, and relationships from the provided content.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- concepts: unique domain concepts, technical terms, and important ideas, each with a name, an optional definition, and a confidence score (0-1) based on how clearly the concept is defined.
- entities: named entities significant to the content (PERSON, ORGANIZATION, LOCATION, DATE, MONEY, PRODUCT, EVENT, etc.), with optional attributes such as title, role, or description.
- relationships: meaningful, explicitly stated relationships between the extracted items; source and target must name an extracted concept or entity.
- Be precise and avoid duplicates. Only include high-confidence extractions.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const summaryPrompt = `Create a comprehensive summary that captures all key information, including any informal notes, annotations, or remarks. Maintain important details that might be relevant for future searches.`

// buildExtractionPrompt assembles the extraction system prompt, including
// optional taxonomy guidance and domain focus.
func buildExtractionPrompt(taxonomy, domain string) string {
	var b strings.Builder
	fmt.Fprintf(&b, extractionPromptTemplate, extractionResponseSchema)
	if taxonomy != "" {
		b.WriteString("\n\nUse this taxonomy as guidance:\n")
		b.WriteString(taxonomy)
	}
	if domain != "" {
		b.WriteString("\n\nFocus on the ")
		b.WriteString(domain)
		b.WriteString(" domain. Pay special attention to domain-specific concepts and entities.")
	}
	return b.String()
}
