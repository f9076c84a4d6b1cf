package stream

// Config describes the broker, the strip and the declared animations.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	FrameRate  float64 `yaml:"frameRate"`
	NumPixels  int     `yaml:"numPixels"`
	Background string  `yaml:"background"`

	Nodes      []NodeConfig      `yaml:"nodes"`
	Animations []AnimationConfig `yaml:"animations"`
}

// NodeConfig declares one scene node painting a segment of the strip.
type NodeConfig struct {
	Name   string `yaml:"name"`
	Start  int    `yaml:"start"`
	Length int    `yaml:"length"`
	Colour string `yaml:"colour"`
}

// AnimationConfig declares one animator bound to a node quantity.
//
// Target is a node property name ("translationX", "alpha", ...), a paint
// field ("paint.strokeWidth", "paint.alpha") or the segment's free-standing
// gain cell ("gain").
type AnimationConfig struct {
	Name       string   `yaml:"name"`
	Node       string   `yaml:"node"`
	Target     string   `yaml:"target"`
	From       *float64 `yaml:"from"`
	To         float64  `yaml:"to"`
	DurationMs int64    `yaml:"durationMs"`
	DelayMs    int64    `yaml:"delayMs"`
	Ease       string   `yaml:"ease"`
}
