package view

const stylesheet = `
:root{--yellow:#ffde59;--pink:#ff90e8;--blue:#90a8ff;--orange:#ff9f47;--green:#7dffa0}
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,sans-serif;background:#fffdf5;color:#000}
.inline{display:inline}
.navbar{position:sticky;top:0;z-index:50;display:flex;justify-content:space-between;align-items:center;padding:1rem 1.5rem;background:#fff;border-bottom:4px solid #000}
.brand{display:flex;align-items:center;gap:.5rem}
.brand-mark{width:2.5rem;height:2.5rem;background:var(--yellow);border:2px solid #000;display:flex;align-items:center;justify-content:center;font-weight:900}
.brand-name{font-weight:900;font-size:1.5rem;text-transform:uppercase}
.nav-links{display:flex;gap:2rem;font-weight:700;text-transform:uppercase}
.nav-link{color:#000;text-decoration:none}
.btn{display:inline-block;padding:.75rem 1.5rem;border:2px solid #000;font-weight:900;text-transform:uppercase;cursor:pointer;box-shadow:4px 4px 0 #000;text-decoration:none;color:#000}
.btn-black{background:#000;color:#fff}.btn-pink{background:var(--pink)}.btn-white{background:#fff}.btn-green{background:var(--green)}
.btn-block{width:100%}
.hero{padding:6rem 1.5rem;text-align:center;background:var(--yellow);border-bottom:4px solid #000}
.hero h1{font-size:4rem;font-weight:900;text-transform:uppercase}
.highlight{background:#000;color:#fff;padding:0 .5rem}
.badge{display:inline-block;background:#fff;border:2px solid #000;padding:.25rem 1rem;font-weight:900}
.section{padding:5rem 1.5rem;border-bottom:4px solid #000}
.about{display:grid;grid-template-columns:1fr 1fr;gap:3rem}
.about-image img{width:100%;border:4px solid #000}
.numbered{list-style:none;padding:0}.num{display:inline-block;width:2rem;background:var(--yellow);border:2px solid #000;text-align:center;margin-right:.5rem}
.grid{display:grid;gap:2rem}.grid-3{grid-template-columns:repeat(3,1fr)}.grid-4{grid-template-columns:repeat(4,1fr)}
.card{background:#fff;border:4px solid #000;box-shadow:8px 8px 0 #000;padding:2rem;position:relative}
.card img{width:100%}
.accent-pink{background:var(--pink)}.accent-blue{background:var(--blue)}.accent-orange{background:var(--orange)}
.recommended{background:var(--yellow);transform:scale(1.05)}
.ribbon{position:absolute;top:-1rem;right:1rem;background:#000;color:#fff;padding:.25rem .75rem;font-weight:900}
.price{font-size:2.5rem;font-weight:900}
.usp{background:#000;color:#fff}.stat-number{font-size:3rem;font-weight:900;color:var(--yellow)}
.planning{display:grid;grid-template-columns:1fr 1fr;gap:3rem;background:var(--blue)}
.perk{display:inline-block;background:#fff;border:2px solid #000;padding:.5rem 1rem;margin-right:.5rem;font-weight:700}
.field{display:block;margin-bottom:1rem}.field-label{display:block;font-weight:900;text-transform:uppercase;font-size:.75rem}
.field input,.field select,.field textarea{width:100%;padding:.75rem;border:2px solid #000;font:inherit}
.faq-item{border:4px solid #000;margin-bottom:1rem}
.faq-question{width:100%;display:flex;justify-content:space-between;padding:1.5rem;background:#fff;border:0;font:inherit;font-weight:900;cursor:pointer}
.faq-question.open{background:#000;color:#fff}
.faq-answer{padding:1.5rem;border-top:4px solid #000}
.footer{padding:3rem 1.5rem;background:#000;color:#fff}.footer a{color:#fff;margin-right:1rem}
.overlay{position:fixed;inset:0;z-index:100;background:rgba(0,0,0,.8);display:flex;align-items:center;justify-content:center}
.modal{background:#fff;border:4px solid #000;box-shadow:12px 12px 0 var(--pink);padding:2rem;width:min(40rem,95vw);max-height:95vh;overflow:auto;position:relative}
.modal-close{position:absolute;top:1rem;right:1rem;background:var(--pink);border:2px solid #000;font-size:1.25rem;cursor:pointer}
.check.big{font-size:3rem}
`
