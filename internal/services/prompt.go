package services

import "alfredoptarigan/ats-resume-expert/internal/models"

// ReviewInstruction asks for a qualitative fit assessment in prose.
const ReviewInstruction = `
You are an experienced Technical HR with tech experience in the field of Data Science, Full Stack Web development, Big Data Engineering, DEVOPS, and Data Analysis. 
Your task is to review the provided resume against the job description for these profiles. 
Please share your professional evaluation on whether the candidate's profile aligns with the role. Highlight the strengths and weaknesses of the applicant in relation to the specified job requirements.
`

// MatchInstruction asks for a match percentage, the missing keywords and
// closing remarks, in that order. The answer is returned to the user as-is.
const MatchInstruction = `
You are a skilled ATS (Applicant Tracking System) scanner with a deep understanding of Data Science, Full Stack Web development, Big Data Engineering, DEVOPS, and Data Analysis. 
Your task is to evaluate the resume against the provided job description. 
Give me the percentage of match if the resume matches the job description. 
First, the output should come as a percentage, then keywords missing, and last, final thoughts.
`

// InstructionFor returns the fixed instruction prompt for an action.
func InstructionFor(action models.Action) (string, error) {
	switch action {
	case models.ActionReview:
		return ReviewInstruction, nil
	case models.ActionMatch:
		return MatchInstruction, nil
	default:
		return "", ErrUnknownAction
	}
}
