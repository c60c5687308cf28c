package fighterdata

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// propsLayerName is the Tiled object layer read for stage decorations.
const propsLayerName = "Props"

// LoadStage parses and validates one stage XML file. When the stage names a
// Tiled props file, its "Props" object layer is loaded through go-tiled and
// a failure there rejects the stage.
func LoadStage(fsys fs.FS, filePath string) (*StageData, error) {
	var doc stageDoc
	if err := loadDoc(fsys, filePath, &doc); err != nil {
		return nil, err
	}
	if err := checkVerification(filePath, doc.Verification, StageVerification); err != nil {
		return nil, err
	}

	what := "stage " + filePath
	err := requireElems(what,
		req{"name", doc.Name},
		req{"subtitle", doc.Subtitle},
		req{"background", doc.Background},
		req{"parallax", doc.Parallax},
		req{"parallax_depth", doc.ParallaxDepth},
		req{"ground_level", doc.GroundLevel},
		req{"x_offset", doc.XOffset},
		req{"music", doc.Music},
	)
	if err != nil {
		return nil, err
	}

	s := &StageData{
		Name:       text(doc.Name),
		Subtitle:   text(doc.Subtitle),
		Background: text(doc.Background),
		Parallax:   text(doc.Parallax),
		Music:      text(doc.Music),
	}
	if s.ParallaxDepth, err = toInt(what, "parallax_depth", doc.ParallaxDepth); err != nil {
		return nil, err
	}
	if s.GroundLevel, err = toInt(what, "ground_level", doc.GroundLevel); err != nil {
		return nil, err
	}
	if s.XOffset, err = toInt(what, "x_offset", doc.XOffset); err != nil {
		return nil, err
	}

	if doc.Props != nil {
		if err := requireAttrs(what, req{"file", doc.Props.File}); err != nil {
			return nil, err
		}
		s.PropsFile = text(doc.Props.File)
		s.Props, err = loadStageProps(fsys, path.Join(path.Dir(filePath), s.PropsFile))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
	}

	return s, nil
}

// loadStageProps reads prop placements from a Tiled map's "Props" object
// layer. Each object contributes its image name (the "image" property, or
// the object name when unset) and position.
func loadStageProps(fsys fs.FS, tmxPath string) ([]StageProp, error) {
	propsMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var props []StageProp
	for _, og := range propsMap.ObjectGroups {
		if og.Name != propsLayerName {
			continue
		}
		for _, o := range og.Objects {
			image := o.Properties.GetString("image")
			if image == "" {
				image = o.Name
			}
			if image == "" {
				return nil, fmt.Errorf("TMX %s: %w: prop image", tmxPath, ErrMissingAttribute)
			}
			props = append(props, StageProp{
				Image: image,
				X:     o.X,
				Y:     o.Y,
			})
		}
	}
	return props, nil
}
