package extractor

// DefaultPrompt asks for the four standard invoice fields as a Markdown
// table. The web page fetches it from /api/v1/prompt and the handler falls
// back to it when the form prompt is empty.
const DefaultPrompt = `You are a professional data analyst. Analyze the invoice or receipt shown in the provided image.
Extract the following key fields and present them strictly as a Markdown table:
1. Purchase date (Date)
2. Vendor name (Vendor Name)
3. Total amount (Total Amount)
4. Item names and quantities (Line Items)

If any field is not present, fill in **[N/A]** in the table.
Put the second-level heading "## Extraction Result" above the table.`
