package analysis

import "github.com/invopop/jsonschema"

// WorkoutAnalysis is the structured verdict the model must return for a
// workout bundle.
type WorkoutAnalysis struct {
	Recommendation             string `json:"recommendation" jsonschema_description:"Actionable training recommendation for the user."`
	AdjustmentReasoning        string `json:"adjustment_reasoning" jsonschema_description:"Why the user should go harder or easier."`
	IntensityScore             int    `json:"intensity_score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Overall intensity on a 1-10 scale."`
	IntensityLabel             string `json:"intensity_label" jsonschema_description:"Short label, e.g. High-Intensity Interval or Active Recovery."`
	BiometricTrends            string `json:"biometric_trends" jsonschema_description:"Summary of heart-rate and HRV trends across the workouts."`
	EstimatedRecoveryTimeHours int    `json:"estimated_recovery_time_hours" jsonschema_description:"Estimated hours of recovery before the next hard session."`
	SuggestedFocus             string `json:"suggested_focus" jsonschema_description:"What the next sessions should focus on."`
}

// HealthAnalysis is the structured verdict for a daily-health bundle.
type HealthAnalysis struct {
	SleepQualityScore       int    `json:"sleep_quality_score" jsonschema:"minimum=1,maximum=10" jsonschema_description:"Sleep quality on a 1-10 scale."`
	SleepRecommendations    string `json:"sleep_recommendations" jsonschema_description:"Concrete sleep improvements."`
	RestingHRTrends         string `json:"resting_hr_trends" jsonschema_description:"Note on resting heart-rate trends."`
	ActivityLevelAssessment string `json:"activity_level_assessment" jsonschema_description:"Assessment of daily steps and activity minutes."`
	SuggestedImprovements   string `json:"suggested_improvements" jsonschema_description:"Overall suggested improvements."`
}

func generateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var (
	workoutAnalysisSchema = generateSchema[WorkoutAnalysis]()
	healthAnalysisSchema  = generateSchema[HealthAnalysis]()
)
