// Package ar2005 declares the British Columbia Antenatal Record (AR2005) form
// as formdoc models.
package ar2005

import (
	"github.com/andreyvit/formdoc"
)

const Namespace = "http://www.oscarmcmaster.org/AR2005"

// Enums.
var (
	BloodGroup       = formdoc.NewEnum("BloodGroup", "A", "B", "AB", "O", "UN", "ND")
	Rh               = formdoc.NewEnum("Rh", "POS", "WPOS", "NEG", "NDONE", "UNK")
	GBS              = formdoc.NewEnum("GBS", "NDONE", "POSSWAB", "POSURINE", "NEGSWAB", "DONEUNK", "UNK")
	CigsPerDay       = formdoc.NewEnum("CigsPerDay", "", "LESS10", "UP20", "OVER20")
	EthnicValue      = formdoc.NewEnum("EthnicValue", "ANC001", "ANC002", "ANC005", "ANC007", "OTHER", "UN")
	HivResult        = formdoc.NewEnum("HivResult", "POS", "NEG", "IND", "NDONE", "UNK")
	AboResult        = formdoc.NewEnum("AboResult", "A", "B", "AB", "O", "NDONE", "UNK")
	RhResult         = formdoc.NewEnum("RhResult", "POS", "WPOS", "NEG", "NDONE", "UNK")
	GcResult         = formdoc.NewEnum("GcResult", "POS", "NEG", "NDONE", "UNK")
	HbsAgResult      = formdoc.NewEnum("HbsAgResult", "POS", "NEG", "NDONE", "UNK")
	VdrlResult       = formdoc.NewEnum("VdrlResult", "POS", "NEG", "NDONE", "UNK")
	SickleCellResult = formdoc.NewEnum("SickleCellResult", "POS", "NEG", "NDONE", "UNK")
	Sex              = formdoc.NewEnum("Sex", "M", "F", "A", "U")
	TypeOfDelivery   = formdoc.NewEnum("TypeOfDelivery", "AVAG", "IND", "CS", "SVAG", "VAG", "UN")
)

// Checkbox groups.
var (
	YesNoNull = formdoc.NewModel("YesNoNullType", func(b *formdoc.ModelBuilder) {
		b.Bool("yes")
		b.Bool("no")
		b.Bool("null")
	})
	NormalAbnormalNull = formdoc.NewModel("NormalAbnormalNullType", func(b *formdoc.ModelBuilder) {
		b.Bool("normal")
		b.Bool("abnormal")
		b.Bool("null")
	})
)

func yesNo(b *formdoc.ModelBuilder, names ...string) {
	for _, name := range names {
		b.Node(name, YesNoNull)
	}
}

func normalAbnormal(b *formdoc.ModelBuilder, names ...string) {
	for _, name := range names {
		b.Node(name, NormalAbnormalNull)
	}
}

var (
	CustomLab = formdoc.NewModel("CustomLab", func(b *formdoc.ModelBuilder) {
		b.String("label")
		b.String("result")
	})
	Signature = formdoc.NewModel("SignatureType", func(b *formdoc.ModelBuilder) {
		b.String("signature")
		b.Date("date")
		b.String("signature2")
		b.Date("date2")
	})
)

// AR1 sections.
var (
	PatientInformation = formdoc.NewModel("PatientInformation", func(b *formdoc.ModelBuilder) {
		b.String("lastName")
		b.String("firstName")
		b.Enum("ethnic", EthnicValue)
	})
	Occupation = formdoc.NewModel("Occupation", func(b *formdoc.ModelBuilder) {
		b.String("value")
		b.String("other")
	})
	PartnerInformation = formdoc.NewModel("PartnerInformation", func(b *formdoc.ModelBuilder) {
		b.String("lastName")
		b.String("firstName")
		b.Node("occupation", Occupation)
		b.String("educationLevel")
		b.Int("age")
	})
	BirthAttendants = formdoc.NewModel("BirthAttendants", func(b *formdoc.ModelBuilder) {
		b.Bool("OBS")
		b.Bool("FP")
		b.Bool("Midwife")
		b.String("Other")
	})
	NewbornCare = formdoc.NewModel("NewbornCare", func(b *formdoc.ModelBuilder) {
		b.Bool("Ped")
		b.Bool("FP")
		b.Bool("Midwife")
		b.String("Other")
	})
	PractitionerInformation = formdoc.NewModel("PractitionerInformation", func(b *formdoc.ModelBuilder) {
		b.Node("birthAttendants", BirthAttendants)
		b.Node("newbornCare", NewbornCare)
		b.String("familyPhysician")
	})

	DatingMethods = formdoc.NewModel("DatingMethods", func(b *formdoc.ModelBuilder) {
		b.Bool("dates")
		b.Bool("t1US")
		b.Bool("t2US")
		b.Bool("art")
	})
	PregnancyHistory = formdoc.NewModel("PregnancyHistory", func(b *formdoc.ModelBuilder) {
		b.Date("LMP")
		yesNo(b, "LMPCertain")
		b.String("menCycle")
		yesNo(b, "menCycleRegular")
		b.String("contraceptiveType")
		b.Date("contraceptiveLastUsed")
		b.Date("menstrualEDB")
		b.Date("finalEDB")
		b.Node("datingMethods", DatingMethods)
		b.Int("gravida")
		b.Int("term")
		b.Int("premature")
		b.Int("abortuses")
		b.Int("living")
	})

	ObstetricalHistoryItem = formdoc.NewModel("ObstetricalHistoryItemList", func(b *formdoc.ModelBuilder) {
		b.Int("year")
		b.Enum("sex", Sex)
		b.Int("gestAge")
		b.String("birthWeight")
		b.Float("lengthOfLabour")
		b.String("placeOfBirth")
		b.Enum("typeOfDelivery", TypeOfDelivery)
		b.String("comments")
	})
	ObstetricalHistory = formdoc.NewModel("ObstetricalHistory", func(b *formdoc.ModelBuilder) {
		b.Repeated("obsList", ObstetricalHistoryItem)
	})

	CurrentPregnancy = formdoc.NewModel("CurrentPregnancyType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "bleeding", "nausea", "smoking")
		b.Enum("cigsPerDay", CigsPerDay)
		yesNo(b, "alcoholDrugs", "occEnvRisks", "dietaryRes", "calciumAdequate", "folate")
	})
	MedicalHistory = formdoc.NewModel("MedicalHistoryType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "hypertension", "endorince", "urinaryTract", "cardiac", "liver",
			"gynaecology", "hem", "surgeries", "bloodTransfusion", "anesthetics",
			"psychiatry", "epilepsy")
		b.String("otherDescr")
		yesNo(b, "other")
	})
	GenericHistory = formdoc.NewModel("GenericHistoryType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "atRisk", "developmentalDelay", "congenitalAnomolies",
			"chromosomalDisorders", "geneticDisorders")
	})
	InfectiousDisease = formdoc.NewModel("InfectiousDiseaseType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "varicella", "std", "tuberculosis")
		b.String("otherDescr")
		yesNo(b, "other")
	})
	Psychosocial = formdoc.NewModel("PsychosocialType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "poortSocialSupport", "relationshipProblems", "emotionalDepression",
			"substanceAbuse", "familyViolence", "parentingConcerns", "religiousCultural")
	})
	FamilyHistory = formdoc.NewModel("FamilyHistoryType", func(b *formdoc.ModelBuilder) {
		yesNo(b, "atRisk")
	})
	PhysicalExamination = formdoc.NewModel("PhysicalExaminationType", func(b *formdoc.ModelBuilder) {
		b.Float("height")
		b.Float("weight")
		b.Float("bmi")
		b.String("bp")
		normalAbnormal(b, "thyroid", "chest", "breasts", "cardiovascular", "abdomen",
			"varicosities", "exernalGenitals", "cervixVagina", "uterus")
		b.String("uterusSize")
		normalAbnormal(b, "adnexa")
		b.String("otherDescr")
		normalAbnormal(b, "other")
	})
	MedicalHistoryAndPhysicalExam = formdoc.NewModel("MedicalHistoryAndPhysicalExam", func(b *formdoc.ModelBuilder) {
		b.Node("currentPregnancy", CurrentPregnancy)
		b.Node("medicalHistory", MedicalHistory)
		b.Node("genericHistory", GenericHistory)
		b.Node("infectiousDisease", InfectiousDisease)
		b.Node("psychosocial", Psychosocial)
		b.Node("familyHistory", FamilyHistory)
		b.Node("physicalExamination", PhysicalExamination)
	})

	PrenatalGeneticScreening = formdoc.NewModel("PrenatalGeneticScreeningType", func(b *formdoc.ModelBuilder) {
		b.String("MSS_IPS_FTS")
		b.String("EDB_CVS")
		b.String("MSAFP")
		b.Node("customLab1", CustomLab)
		b.Bool("declined")
	})
	InitialLaboratoryInvestigations = formdoc.NewModel("InitialLaboratoryInvestigations", func(b *formdoc.ModelBuilder) {
		b.String("hbResult")
		b.Enum("hivResult", HivResult)
		b.Bool("hivCounsel")
		b.Date("lastPapDate")
		b.String("papResult")
		b.Float("mcvResult")
		b.Enum("aboResult", AboResult)
		b.Enum("rhResult", RhResult)
		b.String("antibodyResult")
		b.Enum("gcResultGonorrhea", GcResult)
		b.Enum("gcResultChlamydia", GcResult)
		b.String("rubellaResult")
		b.String("urineResult")
		b.Enum("hbsAgResult", HbsAgResult)
		b.Enum("vdrlResult", VdrlResult)
		b.Enum("sickleCellResult", SickleCellResult)
		b.Node("prenatalGenericScreening", PrenatalGeneticScreening)
		b.Node("customLab1", CustomLab)
		b.Node("customLab2", CustomLab)
	})

	AR1 = formdoc.NewModel("AR1", func(b *formdoc.ModelBuilder) {
		b.Int("id")
		b.Int("VersionID")
		b.Int("episodeId")
		b.Int("demographicNo")
		b.String("providerNo")
		b.Date("formCreated")
		b.DateTime("formEdited")
		b.Node("patientInformation", PatientInformation)
		b.Node("partnerInformation", PartnerInformation)
		b.Node("practitionerInformation", PractitionerInformation)
		b.Node("pregnancyHistory", PregnancyHistory)
		b.Node("obstetricalHistory", ObstetricalHistory)
		b.Node("medicalHistoryAndPhysicalExam", MedicalHistoryAndPhysicalExam)
		b.Node("initialLaboratoryInvestigations", InitialLaboratoryInvestigations)
		b.String("comments")
		b.String("extraComments")
		b.Node("signatures", Signature)
	})
)

// AR2 sections.
var (
	RiskFactorItem = formdoc.NewModel("RiskFactorItemType", func(b *formdoc.ModelBuilder) {
		b.String("riskFactor")
		b.String("planOfManagement")
	})
	RecommendedImmunoprophylaxis = formdoc.NewModel("RecommendedImmunoprophylaxisType", func(b *formdoc.ModelBuilder) {
		b.Bool("rhNegative")
		b.Date("rhIgGiven")
		b.Bool("rubella")
		b.Bool("newbornHepIG")
		b.Bool("hepBVaccine")
	})
	SubsequentVisitItem = formdoc.NewModel("SubsequentVisitItemType", func(b *formdoc.ModelBuilder) {
		b.Date("date")
		b.String("ga")
		b.Float("weight")
		b.String("bp")
		b.String("urinePR")
		b.String("urineGI")
		b.String("SFH")
		b.String("presentation_position")
		b.String("FHR_fm")
		b.String("comments")
	})
	Ultrasound = formdoc.NewModel("UltrasoundType", func(b *formdoc.ModelBuilder) {
		b.Date("date")
		b.String("ga")
		b.String("results")
	})
	AdditionalLabInvestigations = formdoc.NewModel("AdditionalLabInvestigationsType", func(b *formdoc.ModelBuilder) {
		b.String("hb")
		b.Enum("bloodGroup", BloodGroup)
		b.Enum("rh", Rh)
		b.String("repeatABS")
		b.String("GCT")
		b.String("GTT")
		b.Enum("GBS", GBS)
		b.Node("customLab1", CustomLab)
		b.Node("customLab2", CustomLab)
		b.Node("customLab3", CustomLab)
		b.Node("customLab4", CustomLab)
	})
	DiscussionTopics = formdoc.NewModel("DiscussionTopicsType", func(b *formdoc.ModelBuilder) {
		for _, name := range []string{
			"exercise", "workPlan", "intercourse", "travel", "prenatalClasses",
			"birthPlan", "onCallProviders", "pretermLabour", "PROM", "APH",
			"fetalMovement", "admissionTiming", "painManagement", "labourSupport",
			"breastFeeding", "circumcision", "dischargePlanning", "carSeatSafety",
			"depression", "contraception", "postpartumCare",
		} {
			b.Bool(name)
		}
	})

	AR2 = formdoc.NewModel("AR2", func(b *formdoc.ModelBuilder) {
		b.Repeated("riskFactorList", RiskFactorItem)
		b.Node("recommendedImmunoprophylaxis", RecommendedImmunoprophylaxis)
		b.Repeated("subsequentVisitList", SubsequentVisitItem)
		b.Repeated("ultrasound", Ultrasound)
		b.Node("additionalLabInvestigations", AdditionalLabInvestigations)
		b.Node("discussionTopics", DiscussionTopics)
		b.Node("signatures", Signature)
	})
)

var (
	ARRecord = formdoc.NewModel("ARRecord", func(b *formdoc.ModelBuilder) {
		b.Node("AR1", AR1)
		b.Node("AR2", AR2)
	})
	ARRecordSet = formdoc.NewModel("ARRecordSet", func(b *formdoc.ModelBuilder) {
		b.Repeated("ARRecord", ARRecord)
	})
)

// Schemas. RecordSet is the document type exchanged between systems; Record
// holds a single form.
var (
	RecordSet = formdoc.NewSchema(Namespace, "ARRecordSet", ARRecordSet)
	Record    = formdoc.NewSchema(Namespace, "ARRecord", ARRecord)
)

// NewRecord returns an empty single-form document with its AR1 and AR2
// sections attached.
func NewRecord() *formdoc.Document {
	doc := formdoc.NewDocument(Record)
	doc.Root().AddChild("AR1")
	doc.Root().AddChild("AR2")
	return doc
}
