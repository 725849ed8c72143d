package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string // config directory, e.g. $HOME/.tourcipher
	BoardSize int    // board dimension N for an N×N tour
}
