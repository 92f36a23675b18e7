package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Scene{
	"rotate":  rotateScenes,
	"axis":    axisScenes,
	"frustum": frustumScenes,
	"depth":   depthScenes,
}
