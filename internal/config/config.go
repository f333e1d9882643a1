package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Agenor - Portfolio"

	TPS = 60

	// Page chrome
	HeaderHeight       = 72
	HeaderHeightShrunk = 56
	SectionHeight      = 360
	SectionGap         = 40
	SectionMarginX     = 80
	ScrollSpeed        = 40

	// Contact link
	ContactPhone = "5513982018522"
	ContactOwner = "Agenor"

	// Environment variable prefix for overrides, e.g. BACKDROP_TPS=30.
	EnvPrefix = "BACKDROP_"
)
