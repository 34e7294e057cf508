package game

// Result is the final tally of a finished game.
type Result struct {
	Score int `json:"score"`
	Level int `json:"level"`
	Lines int `json:"lines"`
}

// ScoreKeeper persists the best score across games. LoadHighScore returns 0
// when nothing usable is stored.
type ScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

// ResultRecorder is implemented by score keepers that also keep a history of
// every finished game.
type ResultRecorder interface {
	RecordResult(result Result) error
}

type noKeeper struct{}

func (noKeeper) LoadHighScore() int      { return 0 }
func (noKeeper) SaveHighScore(int) error { return nil }
