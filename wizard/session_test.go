package wizard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/wizard"
)

func newTestManager() *wizard.Manager {
	return wizard.NewManager(wizard.DefaultRubric(), wizard.DefaultSessionTTL)
}

func TestManagerStart(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 7, nil)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 1, session.Step())
	assert.Equal(t, int64(7), session.BusinessID)

	got, ok := manager.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, 1, manager.Count())
}

func TestManagerStartWithPrefill(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	prefill := fullProductState()
	session := manager.Start(models.FlowProduct, 7, prefill)

	form := session.Form()
	assert.Equal(t, prefill.Title, form.Title)
	assert.Equal(t, 100, session.Snapshot().QualityScore)

	// The session holds its own copy of the prefill.
	prefill.Tags = append(prefill.Tags, "altered")
	assert.NotContains(t, session.Form().Tags, "altered")
}

func TestSessionNextBlockedByValidation(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 1, nil)

	errs := session.Next()
	assert.Equal(t, []string{"Veuillez sélectionner une catégorie"}, errs)
	assert.Equal(t, 1, session.Step(), "step unchanged on validation failure")

	session.Apply(models.WizardFormPatch{Category: strPtr("vetements")})
	assert.Empty(t, session.Next())
	assert.Equal(t, 2, session.Step())
}

func TestSessionNextNeverCrossesTerminalStep(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowCatalog, 1, &models.WizardFormState{
		Title:  "Catalogue été",
		Tags:   []string{"été", "plage", "soleil"},
		Images: []models.ImageRef{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
	})

	for i := 0; i < 10; i++ {
		session.Next()
	}
	assert.Equal(t, wizard.CatalogTotalSteps, session.Step())
}

func TestSessionPreviousFlooredAtOne(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 1, nil)

	session.Previous()
	session.Previous()
	assert.Equal(t, 1, session.Step())
}

func TestSessionPreviousClearsValidationErrors(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 1, nil)

	require.NotEmpty(t, session.Next())
	session.Previous()
	assert.Empty(t, session.Snapshot().ValidationErrors)
}

func TestProductPublishGate(t *testing.T) {
	t.Parallel()

	manager := newTestManager()

	t.Run("complete state with a complete variant passes", func(t *testing.T) {
		t.Parallel()
		state := fullProductState()
		state.Variants = []models.Variant{{ColorCode: "blue", SizeCode: "M", Price: 5000, Stock: 3}}
		session := manager.Start(models.FlowProduct, 1, state)
		assert.Empty(t, session.PublishGate())
		assert.True(t, session.Snapshot().CanPublish)
	})

	t.Run("missing variant blocks publication", func(t *testing.T) {
		t.Parallel()
		session := manager.Start(models.FlowProduct, 1, fullProductState())
		errs := session.PublishGate()
		assert.Equal(t, []string{"Au moins une variante complète (couleur, taille, prix) est requise"}, errs)
	})

	t.Run("low score reports deficiencies", func(t *testing.T) {
		t.Parallel()
		session := manager.Start(models.FlowProduct, 1, &models.WizardFormState{
			Title:    "Produit",
			Variants: []models.Variant{{ColorCode: "blue", SizeCode: "M", Price: 5000}},
		})
		errs := session.PublishGate()
		require.NotEmpty(t, errs)
		assert.Equal(t, "La fiche produit est incomplète pour être publiée", errs[0])
		assert.Contains(t, errs, "Titre (5/15 pts)")
	})
}

func TestCatalogPublishGate(t *testing.T) {
	t.Parallel()

	manager := newTestManager()

	t.Run("empty catalog reports all missing pieces", func(t *testing.T) {
		t.Parallel()
		session := manager.Start(models.FlowCatalog, 1, nil)
		errs := session.PublishGate()
		assert.Equal(t, []string{
			"Veuillez donner un nom au catalogue",
			"Ajoutez au moins 3 mots-clés",
			"Ajoutez au moins 4 images",
		}, errs)
	})

	t.Run("complete catalog passes without any variant", func(t *testing.T) {
		t.Parallel()
		session := manager.Start(models.FlowCatalog, 1, &models.WizardFormState{
			Title:  "Catalogue été",
			Tags:   []string{"été", "plage", "soleil"},
			Images: []models.ImageRef{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
		})
		assert.Empty(t, session.PublishGate())
	})
}

func TestSessionApplyRecomputesScore(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 1, nil)
	require.Equal(t, 0, session.Snapshot().QualityScore)

	session.Apply(models.WizardFormPatch{
		Category:    strPtr("vetements"),
		Subcategory: strPtr("t-shirts"),
	})
	assert.Equal(t, 10, session.Snapshot().QualityScore)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	manager := newTestManager()
	session := manager.Start(models.FlowProduct, 1, nil)

	manager.Delete(session.ID)
	_, ok := manager.Get(session.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, manager.Count())
}

func TestManagerPrunesExpiredSessions(t *testing.T) {
	t.Parallel()

	manager := wizard.NewManager(wizard.DefaultRubric(), time.Millisecond)
	stale := manager.Start(models.FlowProduct, 1, nil)

	time.Sleep(10 * time.Millisecond)

	// Pruning happens when new sessions are created.
	fresh := manager.Start(models.FlowProduct, 1, nil)

	_, ok := manager.Get(stale.ID)
	assert.False(t, ok)
	_, ok = manager.Get(fresh.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, manager.Count())
}
