package main

// Specific heat capacity of water, J/kg K
func get_c_w() float64 {
	return 4184.0
}

// Density of water, kg/m3
func get_rho_w() float64 {
	return 1000.0
}

// Thermal conductivity of water, W/m K
func get_k_w() float64 {
	return 0.59
}

// Hours per month used by EED (730 h), h
func get_hrs_per_month() float64 {
	return 730.0
}

// Seconds per monthly stress period, s
func get_sec_per_month() float64 {
	return get_hrs_per_month() * 3600.0
}

// Seconds per year, s
func get_sec_per_year() float64 {
	return 365.25 * 24.0 * 3600.0
}
