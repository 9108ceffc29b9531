package renderer

import "errors"

var (
	ErrSceneResourcesExist     = errors.New("renderer: scene resources already created")
	ErrNoSceneResources        = errors.New("renderer: no scene resources to destroy")
	ErrSwapchainResourcesExist = errors.New("renderer: swapchain resources already created")
	ErrNoSwapchainResources    = errors.New("renderer: no swapchain resources to destroy")
)
