package session

import "errors"

var (
	ErrNoScenes             = errors.New("session: scene source provides no scenes")
	ErrSceneIndexOutOfRange = errors.New("session: initial scene index out of range")
)
