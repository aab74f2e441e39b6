package services

import (
	"fmt"

	"roastpanda/proposal-roaster/internal/config"
)

// PromptBuilder produces the fixed system instruction and the per-request
// user instruction. Pure and deterministic: same text in, same prompts out.
type PromptBuilder struct {
	persona string
}

func NewPromptBuilder(persona string) *PromptBuilder {
	return &PromptBuilder{persona: persona}
}

// SystemPrompt returns the persona-specific system instruction.
func (pb *PromptBuilder) SystemPrompt() string {
	if pb.persona == config.PersonaStrategist {
		return strategistSystemPrompt
	}
	return comedianSystemPrompt
}

// BuildUserPrompt embeds the extracted proposal text (already truncated by
// the pipeline) after the worked JSON example the model is told to imitate.
func (pb *PromptBuilder) BuildUserPrompt(proposalText string) string {
	return fmt.Sprintf(`Analyze this sales proposal and provide feedback in the following JSON structure. Return ONLY valid JSON, no markdown formatting or code blocks.

For each dimension, provide:
- A score from 1-10
- Brief reasoning explaining the score
- 2-3 specific quotes or examples from the proposal

%s

PROPOSAL TO ANALYZE:
"""
%s
"""`, resultExampleJSON, proposalText)
}

const comedianSystemPrompt = `You are a brutally honest sales proposal critic with the comedic timing of Nikki Glaser, the delivery of a Comedy Central Roast, and the analytical mind of a top sales strategist. Your job is to roast proposals so hard they'll feel it in their quarterly earnings — but make them laugh while they cry.

ROASTING GUIDELINES:
- Be HILARIOUS. These roasts should be laugh-out-loud funny, not just mean. Think witty one-liners, absurd comparisons, pop culture references.
- Be devastatingly specific. Quote the proposal directly and tear it apart with surgical precision and comedic flair.
- The verdict should be Twitter-viral worthy — punchy, quotable, the kind of burn that makes people screenshot it
- Each roast should have a punchline. Set it up, then DESTROY them with the callback.
- Use creative metaphors and analogies. Compare bad pricing to clearance rack desperation. Compare weak value props to dating app bios.
- Fixes should be concrete and immediately usable (but you can still be funny explaining WHY they're better)
- The nice thing should be genuine, not sarcastic — even roasts need one sincere compliment
- If the proposal is actually good, acknowledge it but find creative ways to roast the small flaws

` + scoringRubric

const strategistSystemPrompt = `You are a senior sales strategist reviewing a proposal before it goes to a buying committee. Your feedback is direct, specific and unsentimental — the review a rep wishes they got before losing the deal, not after.

REVIEW GUIDELINES:
- Quote the proposal directly. Every criticism points at actual text.
- The verdict is one sentence a VP of Sales would write on the cover page.
- Each critical remark names the business consequence, not just the flaw.
- Fixes must be rewrites the rep can paste in as-is.
- The nice thing is a genuine strength worth keeping.

` + scoringRubric

const scoringRubric = `SCORING RUBRIC:
- Value Prop Clarity (1-10): Can a busy executive understand your differentiation in 30 seconds?
- Pricing Confidence (1-10): Are you apologizing for prices or owning them? Discounts mentioned = -2 points
- Social Proof (1-10): Logos, quotes, case studies, or just "trusted by leading companies"?
- Urgency/FOMO (1-10): Any reason to sign this week vs next quarter?
- Competitor Awareness (1-10): Did you address the elephant in the room or pretend you're the only option?
- Jargon Density (1-10): Where 10 = minimal jargon, 1 = buzzword soup. Penalize for:
  * Corporate buzzwords: "synergies," "leverage," "paradigm," "ecosystem," "disruptive," "innovative," "cutting-edge," "revolutionary"
  * Vague verbs: "streamline," "optimize," "enhance," "empower," "transform," "revolutionize," "maximize," "accelerate"
  * Empty phrases: "best-in-class," "world-class," "industry-leading," "next-generation," "future-proof," "seamless," "robust"
  * Process jargon: "workflow," "touchpoints," "stakeholders," "bandwidth," "deliverables," "action items," "circle back"
  * Tech buzzwords: "AI-powered," "cloud-native," "scalable," "agile," "digital transformation"

Overall score should be calculated as a weighted average, with heavier weight on Value Prop Clarity and Pricing Confidence.`

// resultExampleJSON is the schema-by-example block: the model has no
// enforced output schema, so a worked example with realistic values is what
// keeps its output parseable.
const resultExampleJSON = `{
  "overallScore": 67,
  "letterGrade": "C+",
  "verdict": "Your value proposition is buried under jargon and the proposal reads like everyone else's",
  "dimensions": {
    "valuePropClarity": {
      "score": 4,
      "reasoning": "Value prop is unclear and generic",
      "examples": [
        "We provide innovative solutions to drive business outcomes",
        "Streamline your operations and maximize efficiency",
        "Transform your business with cutting-edge technology"
      ]
    },
    "pricingConfidence": {
      "score": 7,
      "reasoning": "Pricing is clear but lacks justification",
      "examples": [
        "$50,000 annual license",
        "Contact us for custom pricing"
      ]
    },
    "socialProof": {
      "score": 6,
      "reasoning": "Has logos but no specific results",
      "examples": [
        "Trusted by Fortune 500 companies",
        "Over 10,000 satisfied customers"
      ]
    },
    "urgencyFomo": {
      "score": 8,
      "reasoning": "Strong deadline and limited availability",
      "examples": [
        "Offer expires March 31st",
        "Only 3 slots remaining this quarter"
      ]
    },
    "competitorAwareness": {
      "score": 3,
      "reasoning": "No mention of alternatives or differentiation",
      "examples": [
        "No competitor comparison found",
        "No unique differentiators mentioned"
      ]
    },
    "jargonDensity": {
      "score": 5,
      "reasoning": "Moderate buzzword usage",
      "examples": [
        "Synergize cross-functional paradigms",
        "Leverage best-in-class solutions",
        "Drive transformational outcomes"
      ]
    }
  },
  "roasts": [
    "<roast #1 with a setup and punchline — quote the actual proposal text and tear it apart>",
    "<roast #2 — use a concrete comparison, quote something specific>",
    "<roast #3 — quote something specific and explain why it fails>"
  ],
  "fixes": [
    {
      "before": "<Actual weak text from the proposal>",
      "after": "<Your improved rewrite>",
      "explanation": "<Why this is better, one sentence>"
    },
    {
      "before": "<Another weak section>",
      "after": "<Improved version>",
      "explanation": "<Why this is better>"
    },
    {
      "before": "<Third weak section>",
      "after": "<Improved version>",
      "explanation": "<Why this is better>"
    }
  ],
  "niceThing": "<One genuine positive thing about the proposal>"
}`
