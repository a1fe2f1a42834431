package tariffs

import (
	"kostennote/engine/models"
	"kostennote/engine/surcharges"
)

// PostKind tells how a post is priced
type PostKind int

const (
	// KindFixed posts resolve to one amount per basis bracket.
	KindFixed PostKind = iota
	// KindTime posts resolve to a first and a subsequent half-hour rate.
	KindTime
)

// PostInfo is the static metadata of a tariff post
type PostInfo struct {
	Kind    PostKind
	ESClass surcharges.ESClass
	Label   string
	Section string
}

var posts = map[models.TariffPost]PostInfo{
	models.PostTP1:  {KindFixed, surcharges.ClassPleading, "Schriftsatz TP 1", "TP 1 RATG"},
	models.PostTP2:  {KindFixed, surcharges.ClassPleading, "Schriftsatz TP 2", "TP 2 RATG"},
	models.PostTP3A: {KindFixed, surcharges.ClassPleading, "Schriftsatz TP 3A", "TP 3A RATG"},
	models.PostTP3B: {KindFixed, surcharges.ClassAppellate, "Berufung / Rekurs TP 3B", "TP 3B RATG"},
	models.PostTP3C: {KindFixed, surcharges.ClassAppellate, "Revision TP 3C", "TP 3C RATG"},
	models.PostTP5:  {KindFixed, surcharges.ClassExcluded, "Einfaches Schreiben TP 5", "TP 5 RATG"},
	models.PostTP6:  {KindFixed, surcharges.ClassExcluded, "Anderes Schreiben TP 6", "TP 6 RATG"},
	models.PostTP71: {KindTime, surcharges.ClassTime, "Kommission TP 7/1", "TP 7 Abs 1 RATG"},
	models.PostTP72: {KindTime, surcharges.ClassTime, "Kommission TP 7/2", "TP 7 Abs 2 RATG"},
	models.PostTP8:  {KindTime, surcharges.ClassExcluded, "Besprechung TP 8", "TP 8 RATG"},
	models.PostTP9:  {KindTime, surcharges.ClassExcluded, "Reise / Zeitversäumnis TP 9", "TP 9 RATG"},

	models.PostCriminalHearing: {KindTime, surcharges.ClassHearing, "Hauptverhandlung", "§ 9 AHK iVm TP 4 RATG"},
	models.PostCriminalBrief:   {KindFixed, surcharges.ClassPleading, "Schriftsatz im Strafverfahren", "§ 9 AHK"},
	models.PostCriminalRemedy:  {KindFixed, surcharges.ClassAppellate, "Rechtsmittel im Strafverfahren", "§ 9 AHK"},

	models.PostDetentionHearing: {KindTime, surcharges.ClassHearing, "Haftverhandlung", "§ 9 AHK"},
	models.PostDetentionAppeal:  {KindFixed, surcharges.ClassPleading, "Haftbeschwerde", "§ 9 AHK"},
	models.PostDetentionVisit:   {KindTime, surcharges.ClassTime, "Haftbesuch", "§ 9 AHK"},

	models.PostAdminHearing:   {KindTime, surcharges.ClassHearing, "Verhandlung im Verwaltungsstrafverfahren", "§ 13 AHK"},
	models.PostAdminStatement: {KindFixed, surcharges.ClassPleading, "Rechtfertigung / Stellungnahme", "§ 13 AHK"},
	models.PostAdminComplaint: {KindFixed, surcharges.ClassAppellate, "Beschwerde an das Verwaltungsgericht", "§ 13 AHK"},
	models.PostAdminRevision:  {KindFixed, surcharges.ClassAppellate, "Revision an den VwGH", "§ 13 AHK"},
}

// Info returns the metadata of a post
func Info(post models.TariffPost) (PostInfo, bool) {
	info, ok := posts[post]
	return info, ok
}

// KommissionPost narrows the generic Kommission post: TP 7/2 applies when a
// qualified representative is required, TP 7/1 otherwise.
func KommissionPost(requiresQualifiedRep bool) models.TariffPost {
	if requiresQualifiedRep {
		return models.PostTP72
	}
	return models.PostTP71
}
