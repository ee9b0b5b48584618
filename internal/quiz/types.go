package quiz

import "time"

// Category constants.
const (
	CategoryGeneral     = "general"
	CategoryMathematics = "mathematics"
	CategoryScience     = "science"
	CategoryLanguage    = "language"
	CategoryHistory     = "history"
	CategoryTechnology  = "technology"
	CategoryOther       = "other"
)

// Question type constants.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeFillInBlank    = "fill_in_blank"
	TypeEssay          = "essay"
	TypeMatching       = "matching"
)

// Difficulty constants.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

// Quiz status constants.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Provenance tags recorded in quiz metadata.
const (
	SourceAI     = "ai"
	SourceImport = "import"
	SourceManual = "manual"
)

// Question is the canonical, fully-defaulted question shape produced by the
// formatter. Output order of a quiz's questions matches input order.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Type          string   `json:"questionType"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        int      `json:"points"`
	OrderIndex    int      `json:"orderIndex"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Tags          []string `json:"tags,omitempty"`

	// Type-specific fields.
	BlankCount  int      `json:"blankCount,omitempty"`
	LeftColumn  []string `json:"leftColumn,omitempty"`
	RightColumn []string `json:"rightColumn,omitempty"`
}

// Metadata carries generation provenance and derived quiz statistics.
type Metadata struct {
	GeneratedBy      string    `json:"generatedBy"`
	SourceFile       string    `json:"sourceFile,omitempty"`
	GeneratedAt      time.Time `json:"generatedAt"`
	EstimatedTime    int       `json:"estimatedTime"` // minutes
	ComplexityScore  string    `json:"complexityScore"`
	ReadabilityScore float64   `json:"readabilityScore"`
}

// Quiz is the canonical quiz shape. QuestionCount always equals
// len(Questions) when questions are present.
type Quiz struct {
	ID              string         `json:"id,omitempty"`
	Title           string         `json:"title"`
	Topic           string         `json:"topic,omitempty"`
	Description     string         `json:"description,omitempty"`
	Category        string         `json:"category"`
	QuestionType    string         `json:"questionType"`
	DifficultyLevel string         `json:"difficultyLevel"`
	TimeLimit       int            `json:"timeLimit,omitempty"` // minutes, 0 = no limit
	Status          string         `json:"status"`
	IsPublic        bool           `json:"isPublic"`
	Tags            []string       `json:"tags"`
	UserID          string         `json:"userId,omitempty"`
	FolderID        string         `json:"folderId,omitempty"`
	Settings        map[string]any `json:"settings"`
	Metadata        Metadata       `json:"metadata"`
	Questions       []Question     `json:"questions,omitempty"`
	QuestionCount   int            `json:"questionCount"`
	CreatedAt       time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt,omitempty"`
}

// RawQuestion is a question-like object as delivered by the AI generator or
// an import source, before any normalization. Loosely typed fields hold
// whatever shape the source supplied.
type RawQuestion struct {
	ID            string
	Text          string
	Type          any
	Options       []string
	CorrectAnswer string
	Explanation   string
	Points        any
	Difficulty    any
	Tags          any
	LeftColumn    []string
	RightColumn   []string
}

// RawQuiz is a quiz-like object before normalization.
type RawQuiz struct {
	ID              string
	Title           any
	Topic           string
	Description     string
	Category        any
	QuestionType    any
	DifficultyLevel any
	TimeLimit       any
	Status          string
	IsPublic        bool
	Tags            any
	Settings        any
	UserID          string
	FolderID        string
	GeneratedBy     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Questions       []RawQuestion
}

// Context carries per-call formatting provenance.
type Context struct {
	UserID      string
	GeneratedBy string
	SourceFile  string
}
