package academics

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	classModel "madrasa_backend/internals/features/academics/classes/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
	teacherModel "madrasa_backend/internals/features/academics/teachers/model"
	"madrasa_backend/internals/helpers/dbtime"
)

type ClassSeed struct {
	Name       string  `json:"name"`
	NameArabic *string `json:"name_arabic"`
	Level      int     `json:"level"`
	MonthlyFee int64   `json:"monthly_fee"`
}

type TeacherSeed struct {
	EmployeeCode  string   `json:"employee_code"`
	FullName      string   `json:"full_name"`
	Phone         string   `json:"phone"`
	Subjects      []string `json:"subjects"`
	JoiningDate   string   `json:"joining_date"`
	MonthlySalary int64    `json:"monthly_salary"`
}

type StudentSeed struct {
	Code          string `json:"code"`
	FullName      string `json:"full_name"`
	FatherName    string `json:"father_name"`
	GuardianPhone string `json:"guardian_phone"`
	Gender        string `json:"gender"`
	ClassName     string `json:"class_name"`
	RollNumber    *int   `json:"roll_number"`
	AdmissionDate string `json:"admission_date"`
	IsLillah      bool   `json:"is_lillah"`
}

type AcademicSeed struct {
	Classes  []ClassSeed   `json:"classes"`
	Teachers []TeacherSeed `json:"teachers"`
	Students []StudentSeed `json:"students"`
}

type Result struct {
	Classes  int
	Teachers int
	Students int
}

func LoadFile(filePath string) (AcademicSeed, error) {
	var in AcademicSeed
	file, err := os.ReadFile(filePath)
	if err != nil {
		return in, err
	}
	err = json.Unmarshal(file, &in)
	return in, err
}

/*
Seed: idempoten lewat unique key (class_name, employee_code, student_code).
Siswa merujuk kelas lewat nama; kelas yang tidak ada → error.
*/
func Seed(db *gorm.DB, in AcademicSeed) (Result, error) {
	var res Result
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, c := range in.Classes {
			m := classModel.ClassModel{
				ClassName:       c.Name,
				ClassNameArabic: c.NameArabic,
				ClassLevel:      c.Level,
				ClassMonthlyFee: c.MonthlyFee,
				ClassIsActive:   true,
			}
			r := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if r.Error != nil {
				return fmt.Errorf("kelas %s: %w", c.Name, r.Error)
			}
			res.Classes += int(r.RowsAffected)
		}

		for _, t := range in.Teachers {
			joined, err := dbtime.ParseDate(t.JoiningDate)
			if err != nil {
				return fmt.Errorf("guru %s: %w", t.EmployeeCode, err)
			}
			m := teacherModel.TeacherModel{
				TeacherEmployeeCode:  t.EmployeeCode,
				TeacherFullName:      t.FullName,
				TeacherPhone:         t.Phone,
				TeacherSubjects:      pq.StringArray(t.Subjects),
				TeacherJoiningDate:   joined,
				TeacherMonthlySalary: t.MonthlySalary,
				TeacherStatus:        teacherModel.TeacherStatusActive,
			}
			r := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if r.Error != nil {
				return fmt.Errorf("guru %s: %w", t.EmployeeCode, r.Error)
			}
			res.Teachers += int(r.RowsAffected)
		}

		classIDs := map[string]classModel.ClassModel{}
		var classes []classModel.ClassModel
		if err := tx.Find(&classes).Error; err != nil {
			return err
		}
		for _, c := range classes {
			classIDs[c.ClassName] = c
		}

		for _, s := range in.Students {
			cls, ok := classIDs[s.ClassName]
			if !ok {
				return fmt.Errorf("siswa %s: kelas %q tidak ada", s.Code, s.ClassName)
			}
			admitted, err := dbtime.ParseDate(s.AdmissionDate)
			if err != nil {
				return fmt.Errorf("siswa %s: %w", s.Code, err)
			}
			m := studentModel.StudentModel{
				StudentCode:          s.Code,
				StudentFullName:      s.FullName,
				StudentFatherName:    s.FatherName,
				StudentGuardianPhone: s.GuardianPhone,
				StudentGender:        s.Gender,
				StudentClassID:       &cls.ClassID,
				StudentRollNumber:    s.RollNumber,
				StudentAdmissionDate: admitted,
				StudentStatus:        studentModel.StudentStatusActive,
				StudentIsLillah:      s.IsLillah,
			}
			r := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
			if r.Error != nil {
				return fmt.Errorf("siswa %s: %w", s.Code, r.Error)
			}
			res.Students += int(r.RowsAffected)
		}
		return nil
	})
	if err == nil {
		log.Printf("✅ Seed akademik: %d kelas, %d guru, %d siswa baru", res.Classes, res.Teachers, res.Students)
	}
	return res, err
}
