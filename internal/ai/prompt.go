package ai

const analysisPrompt = `Analyze the trash/recyclable item in the image. Respond with ONLY a valid JSON object (no markdown, no extra text) with this exact structure:
{
  "isValidTrashImage": true,
  "name": "item name (e.g. Plastic Bottle)",
  "materials": ["material1", "material2"],
  "recyclingMethod": "step-by-step recycling instructions",
  "reuseMethod": "creative reuse ideas",
  "category": "one of: plastics, paper and cardboard, metal, glass, waste"
}
If the image does not show a single identifiable piece of trash, respond with:
{
  "isValidTrashImage": false,
  "error": "short reason"
}`
