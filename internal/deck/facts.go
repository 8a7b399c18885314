package deck

// factsPerSlide caps how many facts fit on one summary slide.
const factsPerSlide = 7

// highYieldFacts is the fixed summary content appended to every deck,
// split across two slides.
var highYieldFacts = []string{
	"AN has the highest mortality rate of ANY psychiatric disorder (SMR ~5-10x).",
	"DSM-5 REMOVED amenorrhea as a required criterion for AN.",
	"DSM-5 reduced BN binge/purge frequency threshold: once/week (was twice/week).",
	"Fluoxetine 60 mg/day = only FDA-approved med for Bulimia Nervosa.",
	"Lisdexamfetamine (Vyvanse) = only FDA-approved med for Binge Eating Disorder.",
	"BUPROPION is CONTRAINDICATED in BN (increased seizure risk).",
	"Refeeding syndrome: hypophosphatemia leading to cardiac/respiratory failure.",
	"Russell's Sign = dorsal hand calluses from self-induced vomiting (BN).",
	"FBT (Maudsley) = first-line therapy for adolescents with AN.",
	"CBT-E = first-line psychotherapy for BN and BED in adults.",
}
