package config

import "github.com/yohamta/donburi/ecs"

// Default is the single renderer layer; draw order follows renderer
// registration order within a scene.
const Default ecs.LayerID = 0
