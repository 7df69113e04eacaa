package service

import "fmt"

// systemPrompt declares strict-JSON-only output to the model.
const systemPrompt = "You are a helpful AI assistant that analyzes resumes against job descriptions and outputs strict JSON."

// promptTemplate is a contract with the upstream model. The JSON field names
// it mandates are parsed verbatim by Normalize and must not change.
const promptTemplate = `
You are an ATS (Applicant Tracking System) and expert resume coach. You will receive:

1) A Job Description (JD)
2) A Candidate Resume

Your tasks:
- Extract a list of important skills, tools, and keywords from the JD.
- Extract current skills, experience, and keywords from the Resume.
- Compare both and find:
  - Matched skills / keywords
  - Missing but important skills / keywords
- Then generate:
  (a) An optimized professional summary for the resume, tailored to the JD (3-5 lines). Write in a natural, human tone. Avoid robotic phrasing, excessive parallelism, or "AI-sounding" patterns. Make it sound like a real person wrote it.
  (b) Rewritten experience bullet points that better match the JD while staying honest. Vary the sentence structure to sound authentic and not like AI-generated text. Do not make them all sound exactly the same structure.
  (c) A list of missing or weakly covered keywords that the candidate should add.
  (d) An ATS score from 0 to 100, based on how well the resume matches the JD.
  (e) 3-5 improvement tips to increase the ATS score.

Return your response STRICTLY in the following JSON format (no markdown, no backticks):

{
  "matchedSkills": ["skill1", "skill2", ...],
  "missingSkills": ["skillA", "skillB", ...],
  "extraKeywords": ["keyword1", "keyword2", ...],
  "optimizedSummary": "text...",
  "optimizedExperienceBullets": ["bullet1", "bullet2", ...],
  "atsScore": 87,
  "improvementTips": ["tip1", "tip2", ...]
}

Job Description:
%s

Resume:
%s
`

// BuildPrompt renders the analysis instruction template. It is pure and
// deterministic: identical inputs always produce an identical prompt.
func BuildPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(promptTemplate, jobDescription, resumeText)
}
