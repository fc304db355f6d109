package knowledge

import "github.com/PabloGalante/longevity-agent/internal/domain"

// defaultSupplements is the built-in catalog used when no external source is
// configured.
func defaultSupplements() []*domain.Supplement {
	return []*domain.Supplement{
		{
			Name:          "Vitamin D3",
			Description:   "Vital for immune function, bone health, and overall longevity. Many people are deficient, especially in northern climates or those with limited sun exposure.",
			Dosage:        "1,000-5,000 IU daily, ideally with K2 for better calcium absorption",
			Cautions:      "High doses may cause hypercalcemia. Blood levels should be monitored with dosages above 5,000 IU daily.",
			EvidenceLevel: "Strong - multiple randomized controlled trials",
			RelevantGoals: []string{"immune support", "bone health", "longevity", "general health"},
			ReferralLink:  "https://www.amazon.com/Nature-Made-Vitamin-Softgels-Count/dp/B08MQ5H83P/ref=sr_1_1?keywords=vitamin+d3+5000+iu+nature+made&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Magnesium",
			Description:   "Essential mineral involved in over 300 enzymatic reactions. Supports muscle function, sleep quality, stress response, and cardiovascular health.",
			Dosage:        "200-400mg daily, preferably magnesium glycinate or threonate forms for better absorption",
			Cautions:      "May cause loose stools at higher doses. Not recommended for those with kidney disease without medical supervision.",
			EvidenceLevel: "Strong - multiple clinical trials",
			RelevantGoals: []string{"sleep improvement", "stress reduction", "muscle recovery", "heart health"},
			ReferralLink:  "https://www.amazon.com/Nature-Made-Magnesium-Supplement-Count/dp/B07RM7VXFV/ref=sr_1_1?keywords=magnesium+glycinate+nature+made&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Omega-3 Fatty Acids",
			Description:   "Essential fatty acids that reduce inflammation, support brain health, and improve cardiovascular markers. DHA and EPA are the most studied beneficial forms.",
			Dosage:        "1-3g combined EPA+DHA daily",
			Cautions:      "May have blood-thinning effects. Discontinue 1-2 weeks before surgery. Choose low-mercury products.",
			EvidenceLevel: "Strong - extensive research including large-scale trials",
			RelevantGoals: []string{"heart health", "brain function", "inflammation reduction", "joint pain"},
			ReferralLink:  "https://www.amazon.com/Nordic-Naturals-Ultimate-Omega-Softgels/dp/B01MULTGUM/ref=sr_1_1?keywords=nordic+naturals+ultimate+omega&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Berberine",
			Description:   "Plant compound that helps regulate blood glucose, improves lipid profiles, and supports gut health. Often compared to metformin for its metabolic benefits.",
			Dosage:        "500mg 1-3 times daily with meals",
			Cautions:      "May cause digestive discomfort. Can interact with certain medications including antibiotics and blood thinners.",
			EvidenceLevel: "Moderate to strong - multiple clinical trials",
			RelevantGoals: []string{"blood sugar control", "weight loss", "metabolic health", "longevity"},
			ReferralLink:  "https://www.amazon.com/Thorne-Research-Berberine-Supplement-Capsules/dp/B09BYRGXHL/ref=sr_1_1?keywords=thorne+berberine&qid=1711440000&sr=8-1",
		},
		{
			Name:          "CoQ10 (Ubiquinol)",
			Description:   "Antioxidant important for cellular energy production in the mitochondria. Levels decline with age and statin use. Supports heart health and energy levels.",
			Dosage:        "100-200mg daily with a fatty meal for better absorption",
			Cautions:      "Generally well-tolerated. May interact with blood thinners and blood pressure medications.",
			EvidenceLevel: "Moderate - multiple clinical trials",
			RelevantGoals: []string{"energy", "heart health", "statin side effect reduction", "anti-aging"},
			ReferralLink:  "https://www.amazon.com/NOW-Supplements-Ubiquinol-CoQ10-Softgels/dp/B0014AU4PY/ref=sr_1_1?keywords=now+ubiquinol+coq10&qid=1711440000&sr=8-1",
		},
		{
			Name:          "NMN (Nicotinamide Mononucleotide)",
			Description:   "Precursor to NAD+, which declines with age and is crucial for cellular energy production and DNA repair. May support healthy aging and metabolic function.",
			Dosage:        "250-1,000mg daily",
			Cautions:      "Relatively new supplement with limited long-term human studies. Generally considered safe but expensive.",
			EvidenceLevel: "Emerging - animal studies promising, human studies limited",
			RelevantGoals: []string{"longevity", "anti-aging", "energy", "cellular health"},
			ReferralLink:  "https://www.amazon.com/ProHealth-Longevity-Nicotinamide-Mononucleotide-Supplement/dp/B07PVPLJ8P/ref=sr_1_1?keywords=prohealth+longevity+nmn&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Ashwagandha",
			Description:   "Adaptogenic herb that helps the body manage stress. May reduce cortisol levels, improve sleep quality, and support thyroid function.",
			Dosage:        "300-600mg daily of root extract standardized to 5% withanolides",
			Cautions:      "May increase thyroid hormone levels. Not recommended for pregnant women or those with autoimmune thyroid conditions.",
			EvidenceLevel: "Moderate - several clinical trials",
			RelevantGoals: []string{"stress reduction", "sleep", "anxiety", "thyroid support"},
			ReferralLink:  "https://www.amazon.com/NOW-Supplements-Ashwagandha-450mg-Capsules/dp/B06X9T1Y8F/ref=sr_1_1?keywords=now+ashwagandha+450mg&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Creatine Monohydrate",
			Description:   "One of the most well-researched supplements, supports muscle energy, cognitive function, and overall cellular energy production.",
			Dosage:        "3-5g daily, no loading phase necessary for general health",
			Cautions:      "May cause water retention initially. Stay well hydrated when supplementing.",
			EvidenceLevel: "Strong - extensive research and clinical trials",
			RelevantGoals: []string{"muscle strength", "cognitive performance", "energy", "exercise performance"},
			ReferralLink:  "https://www.amazon.com/ON-Optimum-Nutrition-Creatine-Powder/dp/B002DYIZEO/ref=sr_1_1?keywords=optimum+nutrition+creatine+monohydrate&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Zinc",
			Description:   "Essential mineral critical for immune function, testosterone production, and enzyme reactions. Many are deficient due to soil depletion and dietary choices.",
			Dosage:        "15-30mg daily, preferably with copper to prevent imbalance",
			Cautions:      "High doses may deplete copper. Long-term high-dose supplementation not recommended without monitoring.",
			EvidenceLevel: "Strong - well-established essential nutrient",
			RelevantGoals: []string{"immune support", "hormone balance", "skin health", "wound healing"},
			ReferralLink:  "https://www.amazon.com/Nature-Made-Zinc-Supplement-Count/dp/B0912CSGB6/ref=sr_1_1?keywords=nature+made+zinc+30mg&qid=1711440000&sr=8-1",
		},
		{
			Name:          "Lion's Mane Mushroom",
			Description:   "Medicinal mushroom that supports nerve growth factor (NGF) production. May enhance cognitive function, memory, and nervous system health.",
			Dosage:        "500-1,000mg daily of extract standardized for beta-glucans",
			Cautions:      "May cause digestive upset in some individuals. Those with mushroom allergies should avoid.",
			EvidenceLevel: "Moderate - promising research but limited large-scale human trials",
			RelevantGoals: []string{"cognitive enhancement", "brain health", "memory", "focus"},
			ReferralLink:  "https://www.amazon.com/dp/B078SZX3ML?tag=longevityagent-20",
		},
	}
}
