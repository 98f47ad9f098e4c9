package command

import "github.com/alexisbeaulieu97/inkwell/internal/style"

// Builtin returns the stock command set shipped with the kiosk UI. Theme
// manifests can replace or extend it at startup.
func Builtin() *Library {
	return NewLibrary([]Command{
		{
			Name: "rounded glass panel",
			Fragment: style.Fragment{
				"radius":     "24px",
				"background": "rgba(255,255,255,0.55)",
				"backdrop":   "blur(18px)",
				"border":     "1px solid rgba(255,255,255,0.4)",
			},
		},
		{
			Name: "rounded",
			Fragment: style.Fragment{
				"radius": "24px",
			},
		},
		{
			Name: "sharp corners",
			Fragment: style.Fragment{
				"radius": "0",
			},
		},
		{
			Name: "dark",
			Fragment: style.Fragment{
				"background": "#1c1c1e",
				"textColor":  "#f2f2f7",
				"border":     "1px solid #3a3a3c",
			},
		},
		{
			Name: "light",
			Fragment: style.Fragment{
				"background": "#ffffff",
				"textColor":  "#1c1c1e",
				"border":     "1px solid #d1d1d6",
			},
		},
		{
			Name: "high contrast",
			Fragment: style.Fragment{
				"background": "#000000",
				"textColor":  "#ffff00",
				"border":     "2px solid #ffffff",
			},
		},
		{
			Name: "compact",
			Fragment: style.Fragment{
				"spacing": "1",
				"padding": style.Fragment{
					"handset": "4px",
					"desk":    "8px",
				},
				"fontSize": "13px",
			},
		},
		{
			Name: "spacious",
			Fragment: style.Fragment{
				"spacing": "3",
				"padding": style.Fragment{
					"handset": "16px",
					"desk":    "32px",
				},
			},
		},
		{
			Name: "large print",
			Fragment: style.Fragment{
				"fontSize":   "20px",
				"lineHeight": 1.5,
			},
		},
		{
			Name: "soft shadow",
			Fragment: style.Fragment{
				"shadow": style.Fragment{
					"handset": "0 1px 4px rgba(0,0,0,0.12)",
					"desk":    "0 4px 16px rgba(0,0,0,0.18)",
				},
			},
		},
		{
			Name: "flat",
			Fragment: style.Fragment{
				"shadow":    "none",
				"elevation": 0,
			},
		},
		{
			Name: "accent",
			Fragment: style.Fragment{
				"background": "#0a84ff",
				"textColor":  "#ffffff",
			},
		},
		{
			Name: "warning tint",
			Fragment: style.Fragment{
				"background": "#fff3cd",
				"textColor":  "#664d03",
				"border":     "1px solid #ffe69c",
			},
		},
		{
			Name: "muted",
			Fragment: style.Fragment{
				"opacity":   0.6,
				"textColor": "#8e8e93",
			},
		},
	})
}
