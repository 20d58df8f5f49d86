package presenter

import (
	"github.com/jackpot51/video-player/common"
	"github.com/jackpot51/video-player/video"
)

// PresenterOption is a functional option used to configure a Presenter during construction.
type PresenterOption func(*presenter)

// WithFeed sets the frame source the presenter pulls from.
//
// Parameters:
//   - f: the feed to pull frames from
//
// Returns:
//   - PresenterOption: a function that sets the feed on the presenter
func WithFeed(f video.Feed) PresenterOption {
	return func(p *presenter) {
		p.feed = f
	}
}

// WithRect sets the initial placement rectangle uniform.
//
// Parameters:
//   - r: the placement rectangle in normalized coordinates
//
// Returns:
//   - PresenterOption: a function that sets the rect on the presenter
func WithRect(r video.Rect) PresenterOption {
	return func(p *presenter) {
		p.rect = r
		p.rectDirty = true
	}
}

// WithActive sets whether the presenter starts active. Presenters are active
// by default.
//
// Parameters:
//   - active: true to draw this presenter each frame
//
// Returns:
//   - PresenterOption: a function that sets the active state on the presenter
func WithActive(active bool) PresenterOption {
	return func(p *presenter) {
		p.active = active
	}
}

// WithSampler overrides the plane sampler configuration. Zero-valued fields
// fall back to the renderer defaults (bilinear filtering, clamp to edge).
//
// Parameters:
//   - s: the sampler staging data
//
// Returns:
//   - PresenterOption: a function that sets the sampler configuration on the presenter
func WithSampler(s common.SamplerStagingData) PresenterOption {
	return func(p *presenter) {
		p.sampler = s
	}
}
