package backdrop

const (
	DefaultWaveCount     = 3
	DefaultParticleCount = 50
	DefaultWaveStep      = 5.0

	// MaxWaveCount is the last index whose opacity is still visible.
	MaxWaveCount = 3
)

// Params are the tunable parts of the picture.
type Params struct {
	Base     Color // solid fill under everything
	Edge     Color // gradient end stops
	Glow     Color // gradient middle stop
	Wave     Color // alpha is replaced by WaveOpacity
	Particle Color

	WaveCount     int
	WaveStep      float64
	ParticleCount int
}

// DefaultParams returns the slate/blue look of the portfolio page.
func DefaultParams() Params {
	return Params{
		Base:     RGBA(0x02, 0x06, 0x17, 1),
		Edge:     RGBA(15, 23, 42, 0.8),
		Glow:     RGBA(59, 130, 246, 0.1),
		Wave:     RGBA(59, 130, 246, 0.1),
		Particle: RGBA(59, 130, 246, 0.3),

		WaveCount:     DefaultWaveCount,
		WaveStep:      DefaultWaveStep,
		ParticleCount: DefaultParticleCount,
	}
}
