// Package curriculum lists the Moroccan BAC tracks, levels and interface
// languages referenced by the catalog and the profile.
package curriculum

// AllTracks is the sentinel track meaning "every track".
const AllTracks = "Toutes"

const (
	TrackSMA = "Sciences Mathématiques A"
	TrackSMB = "Sciences Mathématiques B"
	TrackPC  = "Sciences Physiques"
	TrackSVT = "Sciences de la Vie et de la Terre"
	TrackECO = "Sciences Économiques"
	TrackSGC = "Gestion Comptable"
	TrackLET = "Lettres"
	TrackSHU = "Sciences Humaines"
	TrackSTE = "Sciences et Tech Électriques"
	TrackSTM = "Sciences et Tech Mécaniques"
)

var Tracks = []string{TrackSMA, TrackSMB, TrackPC, TrackSVT, TrackECO, TrackSGC, TrackLET, TrackSHU, TrackSTE, TrackSTM}

const (
	LevelBac1 = "1ère Bac"
	LevelBac2 = "2ème Bac"
)

var Levels = []string{LevelBac1, LevelBac2}

var Languages = []string{"FR", "AR", "EN"}

func IsTrack(v string) bool    { return contains(Tracks, v) }
func IsLevel(v string) bool    { return contains(Levels, v) }
func IsLanguage(v string) bool { return contains(Languages, v) }

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
