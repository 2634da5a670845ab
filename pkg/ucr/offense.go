package ucr

// Offense names a crime category used to filter statistics.
type Offense string

// Offenses accepted by the victim, offender and crime count endpoints.
const (
	OffenseViolentCrime      Offense = "violent_crime"
	OffenseHomicide          Offense = "homicide"
	OffenseRapeLegacy        Offense = "rape-legacy"
	OffenseRapeRevised       Offense = "rape-revised"
	OffenseRobbery           Offense = "robbery"
	OffenseAggravatedAssault Offense = "aggravated-assault"
	OffensePropertyCrime     Offense = "property-crime"
	OffenseBurglary          Offense = "burglary"
	OffenseLarceny           Offense = "larceny"
	OffenseMotorVehicleTheft Offense = "motor-vehicle-theft"
	OffenseArson             Offense = "arson"

	// AllOffenses selects every offense in the agency crime summary.
	AllOffenses Offense = "offenses"
)

// Offenses lists the known offense categories.
func Offenses() []Offense {
	return []Offense{
		OffenseViolentCrime,
		OffenseHomicide,
		OffenseRapeLegacy,
		OffenseRapeRevised,
		OffenseRobbery,
		OffenseAggravatedAssault,
		OffensePropertyCrime,
		OffenseBurglary,
		OffenseLarceny,
		OffenseMotorVehicleTheft,
		OffenseArson,
	}
}

// Known reports whether o is one of the documented categories or the
// all-offenses sentinel. Unknown values are still sent as given.
func (o Offense) Known() bool {
	if o == AllOffenses {
		return true
	}

	for _, known := range Offenses() {
		if o == known {
			return true
		}
	}

	return false
}

// Classification names a demographic axis for victim and offender breakdowns.
type Classification string

// Classifications accepted by the victim and offender endpoints.
const (
	ClassificationAge       Classification = "age"
	ClassificationCount     Classification = "count"
	ClassificationEthnicity Classification = "ethnicity"
	ClassificationRace      Classification = "race"
	ClassificationSex       Classification = "sex"
)

// Classifications lists the known classification axes.
func Classifications() []Classification {
	return []Classification{
		ClassificationAge,
		ClassificationCount,
		ClassificationEthnicity,
		ClassificationRace,
		ClassificationSex,
	}
}

// Known reports whether c is one of the documented axes.
func (c Classification) Known() bool {
	for _, known := range Classifications() {
		if c == known {
			return true
		}
	}

	return false
}
