package question

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// Question is a single trivia question as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// PageResult is one page of the full question listing.
type PageResult struct {
	Questions      []Question
	TotalQuestions int
	CurrentPage    int
	TotalPages     int
}

// CategoryResult is the unpaginated listing for a single category.
type CategoryResult struct {
	Questions      []Question
	TotalQuestions int
}

// CreateInput carries the fields for a new question.
type CreateInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}
