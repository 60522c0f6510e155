package pipeline

// Templates are picked by index modulo list length.
var studyTaskTemplates = []string{
	"Explain the concept of **%s** in your own words.",
	"Connect **%s** to other concepts mentioned.",
	"Summarize the importance of **%s**.",
}

var quizTemplates = []string{
	"What is the primary function of **%s**?",
	"How does **%s** relate to the main topic?",
	"Define **%s** and give an example.",
}

// fallbackStudyTasks are emitted when no keywords survive extraction.
var fallbackStudyTasks = []string{
	"Review the transcript and identify the main topic.",
	"Summarize the transcript in three sentences.",
}

const (
	defaultQuizQuestion = "What is the main idea of this transcript?"
	completePrompt      = "Complete this statement: %s..."
	trueFalsePrompt     = "True or False: %s"

	// minQuizKeywords switches quiz generation from sentences to keywords.
	minQuizKeywords = 3
	// minBlankWords is the shortest sentence turned into a fill-in prompt.
	minBlankWords = 6
)
