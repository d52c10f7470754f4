package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "fit_recovery_efficiency",
				"description": "Fit beta shape parameters for a recovery-efficiency distribution from an elicited mean and two percentile observations. " +
					"If pour_fraction is given, all elicited values are normalized by it first so the fitted parameters describe the fraction-agnostic distribution.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"mean":          map[string]interface{}{"type": "number", "description": "Elicited mean efficiency in (0,1)"},
						"lower_p":       map[string]interface{}{"type": "number", "description": "Lower percentile (default 0.025)"},
						"lower_x":       map[string]interface{}{"type": "number", "description": "Elicited efficiency at the lower percentile"},
						"upper_p":       map[string]interface{}{"type": "number", "description": "Upper percentile (default 0.975)"},
						"upper_x":       map[string]interface{}{"type": "number", "description": "Elicited efficiency at the upper percentile"},
						"pour_fraction": map[string]interface{}{"type": "number", "description": "Optional pour fraction in (0,1] to normalize by before fitting"},
					},
					"required": []string{"mean", "lower_x", "upper_x"},
				},
			},
			map[string]interface{}{
				"name": "resolve_recovery_efficiency",
				"description": "Resolve the recovery-efficiency distribution for a sampling scenario (device, device type, processing technique). " +
					"Follows catalog aliases to terminal shape parameters and reports the scenario's own default pour fraction.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"device":      map[string]interface{}{"type": "string", "description": "Sampling device family (e.g. Swab, Wipe)"},
						"device_type": map[string]interface{}{"type": "string", "description": "Device sub-type (e.g. Puritan Cotton, TX3211)"},
						"technique":   map[string]interface{}{"type": "string", "description": "Processing technique (e.g. NASA Standard)"},
					},
					"required": []string{"device", "device_type", "technique"},
				},
			},
			map[string]interface{}{
				"name":        "list_scenarios",
				"description": "List all scenario keys in the loaded catalog with their disposition (terminal parameters or alias target) and default pour fraction.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name": "simulate_bioburden",
				"description": "Monte-Carlo posterior estimation of bioburden density for one or more hardware components. " +
					"Each sample names its sampling scenario; recovery-efficiency uncertainty is injected from the resolved beta distribution. " +
					"Components with samples but no prior use the analytic Jeffreys solution; an optional prior is importance-resampled against the sample evidence.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"components": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"id":       map[string]interface{}{"type": "string", "description": "Component identifier"},
									"exposure": map[string]interface{}{"type": "number", "description": "Component area or volume to project CFU over"},
									"samples": map[string]interface{}{
										"type": "array",
										"items": map[string]interface{}{
											"type": "object",
											"properties": map[string]interface{}{
												"cfu":           map[string]interface{}{"type": "number", "description": "Observed colony-forming units"},
												"exposure":      map[string]interface{}{"type": "number", "description": "Sampled area or volume"},
												"pour_fraction": map[string]interface{}{"type": "number", "description": "Optional; defaults to the scenario's catalog fraction"},
												"device":        map[string]interface{}{"type": "string"},
												"device_type":   map[string]interface{}{"type": "string"},
												"technique":     map[string]interface{}{"type": "string"},
											},
											"required": []string{"cfu", "exposure", "device", "device_type", "technique"},
										},
									},
									"prior": map[string]interface{}{
										"type":        "array",
										"items":       map[string]interface{}{"type": "number"},
										"description": "Optional analogy-prior density draws",
									},
								},
								"required": []string{"id", "exposure"},
							},
						},
						"resolution": map[string]interface{}{"type": "integer", "description": "Number of posterior draws per component (default 1000)"},
					},
					"required": []string{"components"},
				},
			},
		},
	}
}
