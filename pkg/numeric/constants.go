package numeric

// Physical constants, 2019 SI exact values.
const (
	SpeedOfLight = 299792458.0    // m/s
	Planck       = 6.62607015e-34 // J*s
	Boltzmann    = 1.380649e-23   // J/K
	Avogadro     = 6.02214076e23  // 1/mol
)
