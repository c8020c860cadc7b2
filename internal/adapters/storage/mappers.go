package storage

import (
	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/logging"
)

// schemeToBindingModels flattens a scheme in catalog then binding order
func schemeToBindingModels(name string, scheme *domain.Scheme) []SchemeBindingModel {
	models := make([]SchemeBindingModel, 0, scheme.Len())
	for _, action := range scheme.Actions() {
		for _, seq := range scheme.Sequences(action) {
			models = append(models, SchemeBindingModel{
				Action:     action.Name(),
				Position:   len(models),
				SchemeName: name,
				Sequence:   seq.String(),
			})
		}
	}
	return models
}

// bindingModelsToScheme rebuilds a scheme from rows sorted by position.
// Rows with unknown actions or unparseable sequences are skipped.
func bindingModelsToScheme(name string, models []SchemeBindingModel) *domain.Scheme {
	scheme := domain.NewScheme()
	for _, m := range models {
		action := domain.ActionByName(m.Action)
		if action == domain.NoAction {
			logging.Logger.Warn("Skipping unknown action", "scheme", name, "action", m.Action)
			continue
		}
		seq, err := domain.ParseKeySequence(m.Sequence)
		if err != nil {
			logging.Logger.Warn("Skipping unparseable shortcut",
				"scheme", name, "action", m.Action, "sequence", m.Sequence, "error", err)
			continue
		}
		scheme.Add(action, seq)
	}
	return scheme
}
