package schedule

// HasOverlap é o guardião contra double-booking: responde se o intervalo
// candidato conflita com algum agendamento já existente do mesmo
// funcionário na mesma data (a lista deve vir filtrada por funcionário e
// data). O teste semiaberto único cobre os quatro casos clássicos
// (candidato começa dentro de um existente, termina dentro, contém ou é
// contido); intervalos apenas encostados não conflitam.
//
// Precisa ser reavaliado imediatamente antes do commit de todo
// agendamento novo ou editado, mesmo que a disponibilidade já tenha sido
// consultada: a consulta é só uma dica otimista para a interface.
func HasOverlap(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}
