package usecase

// Request payloads. Field names follow the JSON body; `validate` tags are
// checked after string fields are trimmed.

type CreateTeamInput struct {
	Name        string  `json:"name" validate:"required,max=64"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
}

type UpdateTeamInput struct {
	Name        *string `json:"name" validate:"omitnil,max=64"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
}

type CreateGameInput struct {
	ID        *int64 `json:"id" validate:"omitnil,gt=0"`
	Date      string `json:"date" validate:"required,recentdate"`
	Home      int64  `json:"home" validate:"required,gt=0,nefield=Away"`
	Away      int64  `json:"away" validate:"required,gt=0"`
	HomeScore *int   `json:"home_score" validate:"required,gte=0"`
	AwayScore *int   `json:"away_score" validate:"required,gte=0"`
}

type UpdateGameInput struct {
	Date      *string `json:"date" validate:"omitnil,recentdate"`
	Home      *int64  `json:"home" validate:"omitnil,gt=0"`
	Away      *int64  `json:"away" validate:"omitnil,gt=0"`
	HomeScore *int    `json:"home_score" validate:"omitnil,gte=0"`
	AwayScore *int    `json:"away_score" validate:"omitnil,gte=0"`
}

var (
	TeamStringFields = []string{"name", "description"}
	GameStringFields = []string{"date"}
	GameNumberFields = []string{"id", "home", "away", "home_score", "away_score"}
)
