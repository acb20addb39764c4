package models

// Process describes a heat-treatment process and its valid temperature window.
type Process struct {
	Name            string `json:"name"`
	MinTempC        int    `json:"min_temp_c"`
	MaxTempC        int    `json:"max_temp_c"`
	DurationMinutes int    `json:"duration_minutes"`
}

// InRange reports whether temp lies inside [MinTempC, MaxTempC].
func (p Process) InRange(temp float64) bool {
	return temp >= float64(p.MinTempC) && temp <= float64(p.MaxTempC)
}
