package interview

// beginDoneMsg is sent when classification and question sampling finish.
type beginDoneMsg struct {
	Err error
}

// answerScoredMsg is sent when the current answer has been scored.
type answerScoredMsg struct {
	Score float64
	Err   error
}

// feedbackReadyMsg is sent when the acknowledgement and tip have been
// generated for the last answer.
type feedbackReadyMsg struct {
	Ack string
	Tip string
	Err error
}

// reportReadyMsg is sent when the closing report has been generated.
type reportReadyMsg struct {
	Err error
}

// savedMsg is sent when the finished interview has been persisted.
type savedMsg struct {
	Err error
}
