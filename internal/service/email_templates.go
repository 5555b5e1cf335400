package service

import (
	"fmt"
	"strings"

	"github.com/recoverly/recoverly/internal/model"
)

func achievementsUnlockedEmailTemplate(defs []model.AchievementDefinition, appName string) (string, string) {
	subject := fmt.Sprintf("You earned a new badge in %s!", appName)
	if len(defs) > 1 {
		subject = fmt.Sprintf("You earned %d new badges in %s!", len(defs), appName)
	}

	var list strings.Builder
	points := 0
	for _, def := range defs {
		fmt.Fprintf(&list, "- %s (+%d points): %s\n", def.Title, def.Points, def.Description)
		points += def.Points
	}

	body := fmt.Sprintf(`Great work on your recovery today!

%s
That's %d points added to your progress. Every session counts.

Keep going,
The %s Team`, list.String(), points, appName)

	return subject, body
}
