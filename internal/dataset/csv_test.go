package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley",female,38,1,0,PC 17599,71.2833,C85,C
3,1,3,"Heikkinen, Miss. Laina",female,26,0,0,STON/O2. 3101282,7.925,,S
6,0,3,"Moran, Mr. James",male,,0,0,330877,8.4583,,Q
62,1,1,"Icard, Miss. Amelie",female,38,0,0,113572,80,B28,
`

func TestParseCSV(t *testing.T) {
	d, err := ParseCSV([]byte(sampleCSV))
	assert.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	p := d.Passengers()[0]
	assert.Equal(t, 1, p.ID)
	assert.False(t, p.Survived)
	assert.Equal(t, "male", p.Sex)
	assert.Equal(t, 3, p.Class)
	assert.NotNil(t, p.Age)
	assert.InDelta(t, 22, *p.Age, 0.001)
	assert.InDelta(t, 7.25, p.Fare, 0.001)
	assert.Equal(t, "S", p.Embarked)
}

func TestParseCSVMissingValues(t *testing.T) {
	d, err := ParseCSV([]byte(sampleCSV))
	assert.NoError(t, err)

	// Passenger 6 has no recorded age.
	moran := d.Passengers()[3]
	assert.Nil(t, moran.Age)

	// Passenger 62 has no embarkation port.
	icard := d.Passengers()[4]
	assert.Equal(t, "", icard.Embarked)
	assert.True(t, icard.Survived)
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	csv := "PassengerId,Survived,Pclass,Sex,Age,Fare,Embarked\n" +
		"1,1,1,female,30,50,S\n" +
		"notanid,1,1,male,40,10,S\n" +
		"2,yes,2,male,40,10,S\n" +
		"3,0,3,male,28,8,Q\n"

	d, err := ParseCSV([]byte(csv))
	assert.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []int{1, 3}, []int{d.Passengers()[0].ID, d.Passengers()[1].ID})
}

func TestParseCSVMissingColumn(t *testing.T) {
	_, err := ParseCSV([]byte("PassengerId,Name\n1,Smith\n"))
	assert.Error(t, err)
}

func TestClasses(t *testing.T) {
	d, err := ParseCSV([]byte(sampleCSV))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3}, d.Classes())
}

func TestEmptyDataset(t *testing.T) {
	var d *Dataset
	assert.True(t, d.Empty())
	assert.Equal(t, 0, d.Len())
	assert.True(t, New(nil).Empty())
}
