package ads

// Mode names the ad response template a player should use.
type Mode string

const (
	ModeVMAP Mode = "vmap"
	ModeVAST Mode = "vast"
)

// Placement is a single ad unit request target.
type Placement struct {
	IU      *string `json:"iu"`
	Enabled bool    `json:"enabled"`
	Size    string  `json:"size,omitempty"`
}

func newPlacement(iu, size string) *Placement {
	p := &Placement{Size: size}
	if iu != "" {
		p.IU = &iu
		p.Enabled = true
	}
	return p
}

// Path returns the placement's ad unit path, or "" when unset.
func (p *Placement) Path() string {
	if p == nil || p.IU == nil {
		return ""
	}
	return *p.IU
}

// Placements holds the shape-specific ad units. VMAP blocks fill the *Rules
// fields, VAST blocks the *Preroll fields.
type Placements struct {
	AudioRules   *Placement `json:"audio_rules,omitempty"`
	VideoRules   *Placement `json:"video_rules,omitempty"`
	AudioPreroll *Placement `json:"audio_preroll,omitempty"`
	VideoPreroll *Placement `json:"video_preroll,omitempty"`
}

// PrivacyDefaults are the consent signals sent with every ad request.
type PrivacyDefaults struct {
	NPA       int    `json:"npa"`
	TFCD      int    `json:"tfcd"`
	USPrivacy string `json:"us_privacy"`
}

// AdLock throttles how often a listener may be shown an ad.
type AdLock struct {
	Enabled          bool     `json:"enabled"`
	Seconds          int      `json:"seconds"`
	Scope            string   `json:"scope"`
	ExemptPlacements []string `json:"exempt_placements"`
}

// Route maps a station's ima ad type ("audio", "video", "no") to the
// placement key it requests. A nil value means no ad request.
type Route map[string]*string

// Block is the ad configuration attached to a platform export.
type Block struct {
	Mode            Mode            `json:"mode"`
	Platform        string          `json:"platform"`
	NetworkCode     string          `json:"network_code"`
	Placements      Placements      `json:"placements"`
	Route           Route           `json:"route"`
	PrivacyDefaults PrivacyDefaults `json:"privacy_defaults"`
	AdLock          AdLock          `json:"ad_lock"`
}

const (
	lockSeconds     = 300
	lockScope       = "rolling"
	defaultUSPolicy = "1YNN"
)

func defaultPrivacy() PrivacyDefaults {
	return PrivacyDefaults{NPA: 0, TFCD: 0, USPrivacy: defaultUSPolicy}
}

func defaultAdLock() AdLock {
	return AdLock{Enabled: true, Seconds: lockSeconds, Scope: lockScope, ExemptPlacements: []string{}}
}

func newRoute(audio, video string) Route {
	return Route{
		"audio": &audio,
		"video": &video,
		"no":    nil,
	}
}
